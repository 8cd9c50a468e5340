// Copyright (c) 2026 The ctrie Authors
// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/wisprd/ctrie"
)

func parseVariant(s string) (ctrie.Variant, error) {
	switch s {
	case "vdct", "":
		return ctrie.VariantVDCT, nil
	case "vpfst":
		return ctrie.VariantVPFST, nil
	default:
		return 0, fmt.Errorf("unknown --variant %q (want vdct or vpfst)", s)
	}
}

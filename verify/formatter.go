package verify

import (
	"fmt"
	"strings"
)

// Formatter formats verification results for display
type Formatter struct{}

// NewFormatter creates a new formatter
func NewFormatter() *Formatter {
	return &Formatter{}
}

// FormatResult renders a human-readable verification report
func (f *Formatter) FormatResult(result *VerifyResult) string {
	var sb strings.Builder

	if result.Valid {
		sb.WriteString("Signature: VALID\n")
	} else {
		sb.WriteString("Signature: INVALID\n")
	}

	sb.WriteString(fmt.Sprintf("    Modulus size:  %d bits\n", result.ModulusBits))
	sb.WriteString(fmt.Sprintf("    Subgroup size: %d bits\n", result.SubgroupBits))
	sb.WriteString(fmt.Sprintf("    Public value:  %s\n", result.PublicValueHex))
	sb.WriteString(fmt.Sprintf("    r: %s\n", result.RHex))
	sb.WriteString(fmt.Sprintf("    s: %s\n", result.SHex))

	if result.DigestHex != "" {
		sb.WriteString(fmt.Sprintf("    digest: %s\n", result.DigestHex))
	}

	return sb.String()
}

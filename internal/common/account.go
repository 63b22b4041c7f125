package common

import (
	"path/filepath"
	"regexp"
	"strings"

	"fjacquet/stmtconv/internal/models"
)

// AccountIdentifier is an account number together with where it was found.
type AccountIdentifier struct {
	ID     string // e.g. "54293249"
	Source string // "content", "filename" or "default"
}

// Statement exports are commonly named {FORMAT}_{account}_{from}_{to}_{seq}.{ext},
// e.g. CAMT.053_54293249_2025-04-01_2025-04-30_1.xml or MT940_40702810_2024-01-01_2024-01-31_1.sta.
var exportFilenamePattern = regexp.MustCompile(`(?i)^(?:CAMT\.053|MT940|CSV)_([0-9A-Z]+)_\d{4}-\d{2}-\d{2}_\d{4}-\d{2}-\d{2}_\d+\.(?:xml|csv|mt940|sta|txt)$`)

// ExtractAccountFromFilename reads the account number out of an export
// filename, falling back to the sanitized base name.
func ExtractAccountFromFilename(filename string) AccountIdentifier {
	baseName := filepath.Base(filename)

	if matches := exportFilenamePattern.FindStringSubmatch(baseName); len(matches) >= 2 {
		return AccountIdentifier{ID: matches[1], Source: "filename"}
	}

	baseWithoutExt := strings.TrimSuffix(baseName, filepath.Ext(baseName))
	return AccountIdentifier{ID: SanitizeAccountID(baseWithoutExt), Source: "default"}
}

// ResolveAccount keeps a statement's own account when the document named one
// and otherwise looks at the filename. Only a filename match is trusted; the
// sanitized base name is never used as an account.
func ResolveAccount(stmt *models.Statement, filename string) AccountIdentifier {
	if stmt.Account != "" && stmt.Account != models.UnknownAccount {
		return AccountIdentifier{ID: stmt.Account, Source: "content"}
	}
	if filename != "" {
		if id := ExtractAccountFromFilename(filename); id.Source == "filename" {
			return id
		}
	}
	return AccountIdentifier{ID: models.UnknownAccount, Source: "default"}
}

// SanitizeAccountID makes an account identifier safe to use in a filename.
// Path traversal sequences are removed.
func SanitizeAccountID(accountID string) string {
	sanitized := strings.ReplaceAll(strings.TrimSpace(accountID), " ", "_")

	var result strings.Builder
	for _, r := range sanitized {
		if (r >= 'a' && r <= 'z') ||
			(r >= 'A' && r <= 'Z') ||
			(r >= '0' && r <= '9') ||
			r == '_' || r == '-' || r == '.' {
			result.WriteRune(r)
		} else {
			result.WriteRune('_')
		}
	}
	sanitized = result.String()

	for strings.Contains(sanitized, "..") {
		sanitized = strings.ReplaceAll(sanitized, "..", "_")
	}
	for strings.Contains(sanitized, "__") {
		sanitized = strings.ReplaceAll(sanitized, "__", "_")
	}
	sanitized = strings.Trim(sanitized, "_.")

	if sanitized == "" {
		sanitized = models.UnknownAccount
	}
	return sanitized
}

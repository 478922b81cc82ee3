package validator

import (
	"fmt"
	"strings"

	"github.com/neilberkman/portfolio/internal/core/models"
)

// Summary renders a validation result as a human-readable report
func Summary(r models.ValidationResult) string {
	var b strings.Builder

	b.WriteString("\n=== Assets Directory Validation Summary ===\n")
	if r.IsValid {
		b.WriteString("Status: ✅ VALID\n")
	} else {
		b.WriteString("Status: ❌ INVALID\n")
	}
	fmt.Fprintf(&b, "Pages: %d, Events: %d, Images: %d\n",
		r.Stats.TotalPages, r.Stats.TotalEvents, r.Stats.TotalImages)

	if len(r.Errors) > 0 {
		fmt.Fprintf(&b, "\n❌ Errors (%d):\n", len(r.Errors))
		for _, e := range r.Errors {
			fmt.Fprintf(&b, "  - %s\n", e)
		}
	}

	if len(r.Warnings) > 0 {
		fmt.Fprintf(&b, "\n⚠️  Warnings (%d):\n", len(r.Warnings))
		for _, w := range r.Warnings {
			fmt.Fprintf(&b, "  - %s\n", w)
		}
	}

	if len(r.Stats.PagesWithIssues) > 0 {
		fmt.Fprintf(&b, "\n📁 Pages with issues: %s\n", strings.Join(r.Stats.PagesWithIssues, ", "))
	}

	if len(r.Stats.EventsWithIssues) > 0 {
		fmt.Fprintf(&b, "\n📅 Events with issues: %s\n", strings.Join(r.Stats.EventsWithIssues, ", "))
	}

	return b.String()
}

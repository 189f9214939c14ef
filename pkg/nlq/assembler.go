package nlq

import (
	"fmt"
	"strings"

	"github.com/nitij-msarii/rag-api-usertask/pkg/schema"
)

// RowLimit caps every assembled query at 50 rows.
const RowLimit = 50

// Assemble builds the single SELECT answering the extracted predicates
// against the profile's join graph, and the ordered argument list for its
// placeholders. Extracted values are always bound, never spliced into the
// statement text. The statement carries a fixed ordering and row cap so
// repeated runs over the same data are deterministic.
func Assemble(p Predicates, profile *schema.Profile) (string, []any) {
	var b strings.Builder
	args := make([]any, 0, 3)

	b.WriteString("SELECT ")
	b.WriteString(strings.Join(profile.SelectList, ", "))
	b.WriteString(" FROM ")
	b.WriteString(profile.FromClause)
	for _, join := range profile.Joins {
		b.WriteString(" ")
		b.WriteString(join)
	}

	// 1=1 keeps every later condition an unconditional AND-append.
	b.WriteString(" WHERE 1=1")

	if p.User != nil {
		switch p.User.Kind {
		case UserMatchID:
			args = append(args, p.User.ID)
			fmt.Fprintf(&b, " AND %s = $%d", profile.UserIDColumn, len(args))
		case UserMatchUsername:
			needle := "%" + p.User.Username + "%"
			args = append(args, needle)
			if profile.FreeTextColumn != "" {
				// Some rows reference users only in free text, so the
				// username match is broadened with a containment check
				// against the raw cell data.
				args = append(args, needle)
				fmt.Fprintf(&b, " AND (%s LIKE $%d OR %s LIKE $%d)",
					profile.UsernameColumn, len(args)-1,
					profile.FreeTextColumn, len(args))
			} else {
				fmt.Fprintf(&b, " AND %s LIKE $%d", profile.UsernameColumn, len(args))
			}
		}
	}

	args = append(args, p.Date.Date.Format(DateLayout))
	fmt.Fprintf(&b, " AND DATE(%s) %s $%d", profile.DateColumn, p.Date.Op, len(args))

	fmt.Fprintf(&b, " ORDER BY %s DESC, %s DESC LIMIT %d",
		profile.DateColumn, profile.CreatedAtColumn, RowLimit)

	return b.String(), args
}

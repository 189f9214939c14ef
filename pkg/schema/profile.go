// Package schema holds the fixed schema profiles the query assembler
// targets. Profiles are built once at startup and shared read-only; there
// is no schema discovery.
package schema

import (
	"fmt"
	"sort"
	"strings"

	"github.com/nitij-msarii/rag-api-usertask/pkg/apperrors"
)

// Profile names selectable via configuration.
const (
	ProfileWorkspace = "workspace"
	ProfileAssignee  = "assignee"
)

// NarrativeFields names the descriptive result columns a profile exposes
// to the narrative formatter. An empty name means the profile does not
// provide that field and the formatter must omit it.
type NarrativeFields struct {
	Sheet     string
	Workspace string
	User      string
	Status    string
}

// TableDescription describes one table for the schema introspection
// endpoint.
type TableDescription struct {
	Columns     []string `json:"columns"`
	Description string   `json:"description"`
}

// Profile is a fixed description of the join graph used to answer
// activity queries: the driving cell-data table, its outward left joins,
// the SELECT list, and which columns carry user and date constraints.
// Profiles are immutable at run time.
type Profile struct {
	Name string

	// SelectList holds qualified select expressions in result order.
	SelectList []string
	// ResultColumns holds the column names the select list produces, in
	// the same order.
	ResultColumns []string
	// FromClause is the driving table with its alias.
	FromClause string
	// Joins are the LEFT JOIN clauses in application order.
	Joins []string

	// DateColumn and CreatedAtColumn are the qualified ordering columns.
	DateColumn      string
	CreatedAtColumn string

	// UserIDColumn and UsernameColumn are the qualified user-match
	// columns on the joined user table.
	UserIDColumn   string
	UsernameColumn string
	// FreeTextColumn, when set, is ORed into the username condition as a
	// containment match. Some deployments encode user references in the
	// raw cell data rather than via the join, so this broadens recall.
	FreeTextColumn string

	Narrative NarrativeFields

	// Tables describes the profile for client introspection.
	Tables map[string]TableDescription
}

// ListingHeader returns the first line of a listing-intent narrative.
func (p *Profile) ListingHeader() string {
	return "Tasks and Activities:"
}

// TableNames returns the profile's table names in sorted order.
func (p *Profile) TableNames() []string {
	names := make([]string, 0, len(p.Tables))
	for name := range p.Tables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Registry is the process-wide, read-only set of schema profiles.
type Registry struct {
	profiles map[string]*Profile
}

// NewRegistry builds the registry with both built-in profiles.
func NewRegistry() *Registry {
	return &Registry{
		profiles: map[string]*Profile{
			ProfileWorkspace: workspaceProfile(),
			ProfileAssignee:  assigneeProfile(),
		},
	}
}

// Get returns the named profile.
func (r *Registry) Get(name string) (*Profile, error) {
	p, ok := r.profiles[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w %q (expected one of: %s)",
			apperrors.ErrUnknownProfile, name, strings.Join(r.Names(), ", "))
	}
	return p, nil
}

// Names returns the registered profile names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.profiles))
	for name := range r.profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// workspaceProfile joins cell data outward through sheet and workspace to
// the workspace-owning user. This is the canonical profile.
func workspaceProfile() *Profile {
	return &Profile{
		Name: ProfileWorkspace,
		SelectList: []string{
			"gcd.id",
			"gcd.sheet_id",
			"gcd.column_id",
			"gcd.row_id",
			"gcd.column_index",
			"gcd.column_type",
			"gcd.cell_data",
			"gcd.cell_date",
			"gcd.created_at",
			"gcd.updated_at",
			"hs.name AS sheet_name",
			"hs.privacy_type AS sheet_privacy",
			"hw.workspace_name",
			"hw.description AS workspace_description",
			"au.name AS user_name",
			"au.username",
			"au.email AS user_email",
		},
		ResultColumns: []string{
			"id", "sheet_id", "column_id", "row_id", "column_index",
			"column_type", "cell_data", "cell_date", "created_at",
			"updated_at", "sheet_name", "sheet_privacy", "workspace_name",
			"workspace_description", "user_name", "username", "user_email",
		},
		FromClause: "hotwash_rowcell_data gcd",
		Joins: []string{
			"LEFT JOIN hotwash_sheet hs ON gcd.sheet_id = hs.id",
			"LEFT JOIN hotwash_workspace hw ON hs.workspace_id = hw.id",
			"LEFT JOIN authentication_user au ON hw.user_id = au.id",
		},
		DateColumn:      "gcd.cell_date",
		CreatedAtColumn: "gcd.created_at",
		UserIDColumn:    "au.id",
		UsernameColumn:  "au.username",
		Narrative: NarrativeFields{
			Sheet:     "sheet_name",
			Workspace: "workspace_name",
			User:      "user_name",
		},
		Tables: map[string]TableDescription{
			"hotwash_rowcell_data": {
				Columns: []string{"id", "sheet_id", "column_id", "row_id",
					"column_index", "column_type", "cell_data", "cell_date",
					"created_at", "updated_at"},
				Description: "Contains cell data with dates and user activities",
			},
			"hotwash_sheet": {
				Columns:     []string{"id", "workspace_id", "name", "privacy_type"},
				Description: "Sheets grouping related cell data",
			},
			"hotwash_workspace": {
				Columns:     []string{"id", "user_id", "workspace_name", "description"},
				Description: "Workspaces owning sheets",
			},
			"authentication_user": {
				Columns:     []string{"id", "name", "username", "email"},
				Description: "User information table",
			},
		},
	}
}

// assigneeProfile joins cell data to its assigned users through the
// assignee tables and pulls in the status lookup. User references may
// also live in the raw cell data as free text, hence the containment
// fallback.
func assigneeProfile() *Profile {
	return &Profile{
		Name: ProfileAssignee,
		SelectList: []string{
			"gcd.id",
			"gcd.sheet_id",
			"gcd.column_id",
			"gcd.row_id",
			"gcd.column_index",
			"gcd.column_type",
			"gcd.cell_data",
			"gcd.cell_date",
			"gcd.created_at",
			"gcd.updated_at",
			"au.username",
			"au.first_name",
			"au.last_name",
			"au.email AS user_email",
			"cs.status_id AS status",
		},
		ResultColumns: []string{
			"id", "sheet_id", "column_id", "row_id", "column_index",
			"column_type", "cell_data", "cell_date", "created_at",
			"updated_at", "username", "first_name", "last_name",
			"user_email", "status",
		},
		FromClause: "hotwash_rowcell_data gcd",
		Joins: []string{
			"LEFT JOIN rag_app_cellassignee ca ON ca.cell_id = gcd.id",
			"LEFT JOIN rag_app_cellassignee_user cau ON cau.cellassignee_id = ca.id",
			"LEFT JOIN auth_user au ON cau.user_id = au.id",
			"LEFT JOIN rag_app_cellstatus cs ON cs.cell_id = gcd.id",
		},
		DateColumn:      "gcd.cell_date",
		CreatedAtColumn: "gcd.created_at",
		UserIDColumn:    "au.id",
		UsernameColumn:  "au.username",
		FreeTextColumn:  "gcd.cell_data",
		Narrative: NarrativeFields{
			User:   "username",
			Status: "status",
		},
		Tables: map[string]TableDescription{
			"hotwash_rowcell_data": {
				Columns: []string{"id", "sheet_id", "column_id", "row_id",
					"column_index", "column_type", "cell_data", "cell_date",
					"created_at", "updated_at"},
				Description: "Contains cell data with dates and user activities",
			},
			"rag_app_cellassignee": {
				Columns:     []string{"id", "cell_id", "sub_cell_id", "cell_type"},
				Description: "Links cells to users (assignees)",
			},
			"rag_app_cellassignee_user": {
				Columns:     []string{"id", "cellassignee_id", "user_id"},
				Description: "Many-to-many relationship between cell assignees and users",
			},
			"rag_app_cellstatus": {
				Columns:     []string{"id", "cell_id", "sub_cell_id", "status_id", "cell_type"},
				Description: "Contains status information for cells",
			},
			"auth_user": {
				Columns:     []string{"id", "username", "first_name", "last_name", "email"},
				Description: "User information table",
			},
		},
	}
}

package nlq

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nitij-msarii/rag-api-usertask/pkg/schema"
)

func workspaceProfile(t *testing.T) *schema.Profile {
	t.Helper()
	p, err := schema.NewRegistry().Get(schema.ProfileWorkspace)
	require.NoError(t, err)
	return p
}

func assigneeProfile(t *testing.T) *schema.Profile {
	t.Helper()
	p, err := schema.NewRegistry().Get(schema.ProfileAssignee)
	require.NoError(t, err)
	return p
}

func TestAssemble_FixedSuffix(t *testing.T) {
	texts := []string{
		"show me everything",
		"What is the status for user id 42 today?",
		"user john's activity this week",
	}
	for _, text := range texts {
		sqlText, _ := Assemble(Extract(text, refTime), workspaceProfile(t))
		assert.True(t,
			strings.HasSuffix(sqlText, "ORDER BY gcd.cell_date DESC, gcd.created_at DESC LIMIT 50"),
			"missing ordering/limit suffix: %s", sqlText)
	}
}

func TestAssemble_DateConditionAlwaysPresent(t *testing.T) {
	sqlText, args := Assemble(Extract("show me everything", refTime), workspaceProfile(t))

	assert.Contains(t, sqlText, "WHERE 1=1")
	assert.Contains(t, sqlText, "AND DATE(gcd.cell_date) >= $1")
	require.Len(t, args, 1)
	assert.Equal(t, "2024-03-07", args[0])
	// Exactly one date condition.
	assert.Equal(t, 1, strings.Count(sqlText, "DATE(gcd.cell_date)"))
}

func TestAssemble_TodayEquality(t *testing.T) {
	sqlText, args := Assemble(Extract("what happened today", refTime), workspaceProfile(t))
	assert.Contains(t, sqlText, "AND DATE(gcd.cell_date) = $1")
	require.Len(t, args, 1)
	assert.Equal(t, "2024-03-14", args[0])
}

func TestAssemble_UserIDCondition(t *testing.T) {
	sqlText, args := Assemble(Extract("status for user id 42 today", refTime), workspaceProfile(t))

	assert.Contains(t, sqlText, "AND au.id = $1")
	assert.Contains(t, sqlText, "AND DATE(gcd.cell_date) = $2")
	require.Len(t, args, 2)
	assert.Equal(t, int64(42), args[0])
	assert.Equal(t, "2024-03-14", args[1])
}

func TestAssemble_UsernameBound(t *testing.T) {
	sqlText, args := Assemble(Extract("user john's activity this week", refTime), workspaceProfile(t))

	assert.Contains(t, sqlText, "AND au.username LIKE $1")
	require.Len(t, args, 2)
	assert.Equal(t, "%john%", args[0])
	// The extracted token is only ever bound, never spliced into the text.
	assert.NotContains(t, sqlText, "john")
}

func TestAssemble_AssigneeFreeTextFallback(t *testing.T) {
	sqlText, args := Assemble(Extract("user john's activity this week", refTime), assigneeProfile(t))

	assert.Contains(t, sqlText, "AND (au.username LIKE $1 OR gcd.cell_data LIKE $2)")
	require.Len(t, args, 3)
	assert.Equal(t, "%john%", args[0])
	assert.Equal(t, "%john%", args[1])
	assert.Equal(t, "2024-03-10", args[2])
}

func TestAssemble_JoinGraphPerProfile(t *testing.T) {
	sqlText, _ := Assemble(Extract("anything", refTime), workspaceProfile(t))
	assert.Contains(t, sqlText, "FROM hotwash_rowcell_data gcd")
	assert.Contains(t, sqlText, "LEFT JOIN hotwash_sheet hs ON gcd.sheet_id = hs.id")
	assert.Contains(t, sqlText, "LEFT JOIN authentication_user au ON hw.user_id = au.id")

	sqlText, _ = Assemble(Extract("anything", refTime), assigneeProfile(t))
	assert.Contains(t, sqlText, "LEFT JOIN rag_app_cellassignee ca ON ca.cell_id = gcd.id")
	assert.Contains(t, sqlText, "LEFT JOIN rag_app_cellstatus cs ON cs.cell_id = gcd.id")
}

func TestAssemble_Deterministic(t *testing.T) {
	ref := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)
	p := Extract("user id 9 yesterday", ref)

	first, firstArgs := Assemble(p, workspaceProfile(t))
	second, secondArgs := Assemble(p, workspaceProfile(t))
	assert.Equal(t, first, second)
	assert.Equal(t, firstArgs, secondArgs)
}

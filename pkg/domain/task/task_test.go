package task_test

import (
	"encoding/json"
	"testing"

	"github.com/NeuralTrust/TaskAPI/pkg/domain/task"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListQuery_Normalize(t *testing.T) {
	tests := []struct {
		name  string
		in    task.ListQuery
		page  int
		limit int
	}{
		{"defaults", task.ListQuery{}, 1, 10},
		{"negative page", task.ListQuery{Page: -3, Limit: 5}, 1, 5},
		{"limit over max", task.ListQuery{Page: 2, Limit: 500}, 2, 100},
		{"negative limit", task.ListQuery{Page: 1, Limit: -1}, 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := tt.in.Normalize()
			assert.Equal(t, tt.page, q.Page)
			assert.Equal(t, tt.limit, q.Limit)
		})
	}
}

func TestListQuery_Offset(t *testing.T) {
	assert.Equal(t, 0, task.ListQuery{Page: 1, Limit: 10}.Offset())
	assert.Equal(t, 20, task.ListQuery{Page: 3, Limit: 10}.Offset())
}

func TestNewPage(t *testing.T) {
	page := task.NewPage(nil, task.ListQuery{Page: 2, Limit: 10}, 25)

	assert.NotNil(t, page.Data)
	assert.Equal(t, 3, page.Meta.TotalPages)
	assert.True(t, page.Meta.HasNextPage)
	assert.True(t, page.Meta.HasPrevPage)

	last := task.NewPage(nil, task.ListQuery{Page: 3, Limit: 10}, 25)
	assert.False(t, last.Meta.HasNextPage)

	empty := task.NewPage(nil, task.ListQuery{Page: 1, Limit: 10}, 0)
	assert.Equal(t, 0, empty.Meta.TotalPages)
	assert.False(t, empty.Meta.HasNextPage)
	assert.False(t, empty.Meta.HasPrevPage)

	b, err := json.Marshal(empty)
	require.NoError(t, err)
	assert.JSONEq(t, `{"data":[],"meta":{"page":1,"limit":10,"total":0,"total_pages":0,"has_next_page":false,"has_prev_page":false}}`, string(b))
}

func TestUpdate_Columns(t *testing.T) {
	title := "new"
	done := true

	assert.True(t, task.Update{}.IsEmpty())

	u := task.Update{Title: &title, Done: &done}
	assert.False(t, u.IsEmpty())
	assert.Equal(t, map[string]interface{}{"title": "new", "done": true}, u.Columns())
}

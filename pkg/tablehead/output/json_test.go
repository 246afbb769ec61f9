package output

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osada9000/tablehead-go/pkg/tablehead/models"
)

func TestTableToJSON(t *testing.T) {
	table := &models.Table{
		Sheet:     "Sheet1",
		Columns:   []string{"ID", "Name"},
		Rows:      [][]models.Cell{{int64(1), "Alice"}},
		DataStart: 1,
	}

	data, err := TableToJSON(table, false)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"sheet": "Sheet1",
		"columns": ["ID", "Name"],
		"rows": [[1, "Alice"]],
		"data_start": 1
	}`, string(data))
}

func TestToJSONPretty(t *testing.T) {
	data, err := ToJSON(map[string]int{"a": 1}, true)
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"a\": 1\n}", string(data))
}

func TestResultToJSON(t *testing.T) {
	res := &models.InferenceResult{
		ColumnNames: []string{"ID"},
		DataStart:   1,
	}

	data, err := ResultToJSON(res, false)
	require.NoError(t, err)
	assert.JSONEq(t, `{"column_names": ["ID"], "data_start": 1}`, string(data))
}

package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateJSON(t *testing.T) {
	var d Date
	require.NoError(t, json.Unmarshal([]byte(`"2023-12-30"`), &d))
	assert.Equal(t, "2023-12-30", d.String())

	b, err := json.Marshal(d)
	require.NoError(t, err)
	assert.JSONEq(t, `"2023-12-30"`, string(b))

	require.NoError(t, json.Unmarshal([]byte(`""`), &d))
	assert.True(t, d.IsZero())
	b, err = json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, "null", string(b))

	assert.Error(t, json.Unmarshal([]byte(`"30/12/2023"`), &d))
	assert.Error(t, json.Unmarshal([]byte(`20231230`), &d))
}

func TestNewDateDropsTimeOfDay(t *testing.T) {
	loc := time.FixedZone("UTC+5", 5*60*60)
	d := NewDate(time.Date(2024, 1, 2, 23, 59, 0, 0, loc))
	assert.Equal(t, "2024-01-02", d.String())
	assert.Equal(t, time.UTC, d.Location())
}

func TestFormValueAcceptsStringsAndNumbers(t *testing.T) {
	var in DealInput
	require.NoError(t, json.Unmarshal([]byte(`{"value": "12500"}`), &in))
	require.NotNil(t, in.Value)
	assert.Equal(t, "12500", in.Value.String())

	in = DealInput{}
	require.NoError(t, json.Unmarshal([]byte(`{"value": 45000.5}`), &in))
	assert.Equal(t, "45000.5", in.Value.String())

	in = DealInput{}
	require.NoError(t, json.Unmarshal([]byte(`{"name": "x"}`), &in))
	assert.Nil(t, in.Value, "absent stays nil")

	assert.Error(t, json.Unmarshal([]byte(`{"value": true}`), &in))
}

func TestStageCatalog(t *testing.T) {
	stages := PipelineStages()
	require.Len(t, stages, 6)
	assert.Equal(t, StageLead, stages[0].ID)
	assert.Equal(t, "Closed Won", stages[4].Name)

	stages[0].Name = "mutated"
	assert.Equal(t, "Lead", PipelineStages()[0].Name, "catalog is copied")

	assert.True(t, IsStage(StageNegotiation))
	assert.False(t, IsStage(StageAll))
	assert.False(t, IsStage(""))
	assert.Equal(t, 5, StageIndex(StageLost))
	assert.True(t, StageClosed.IsTerminal())
	assert.False(t, StageProposal.IsTerminal())

	info, ok := StageQualified.Info()
	require.True(t, ok)
	assert.Equal(t, "bg-purple-500", info.Color)
}

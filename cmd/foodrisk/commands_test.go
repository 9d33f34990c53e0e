package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadRecords(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantErr bool
	}{
		{"single object", `{"notification_reference": "2024.1"}`, 1, false},
		{"array", `[{"id": "1"}, {"id": "2"}]`, 2, false},
		{"empty array", `[]`, 0, false},
		{"garbage", `not json`, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, err := readRecords(strings.NewReader(tt.input))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Len(t, records, tt.want)
		})
	}
}

func TestNormalizeCmd_NoConfigNeeded(t *testing.T) {
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetIn(strings.NewReader(`{
		"notification_reference": "2024.1234",
		"hazards_desc": "Salmonella spp. - {pathogenic micro-organisms} *** Listeria monocytogenes - {pathogenic micro-organisms}",
		"origin_country_desc": "Poland",
		"risk_decision_desc": "serious"
	}`))
	root.SetArgs([]string{"normalize", "--config", "does-not-exist.yaml"})

	require.NoError(t, root.Execute())

	var got []struct {
		SourceID string `json:"source_id"`
		Facts    []struct {
			Hazard string `json:"hazard"`
		} `json:"facts"`
		Aggregated []struct {
			Hazards []string `json:"hazards"`
		} `json:"aggregated"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "2024.1234", got[0].SourceID)
	require.Len(t, got[0].Facts, 2)
	assert.Equal(t, "Salmonella", got[0].Facts[0].Hazard)
	assert.Equal(t, "Listeria", got[0].Facts[1].Hazard)
	require.Len(t, got[0].Aggregated, 1)
	assert.Equal(t, []string{"Salmonella", "Listeria"}, got[0].Aggregated[0].Hazards)
}

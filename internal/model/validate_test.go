package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const schemaPath = "../../templates/resume.schema.json"

func toMap(t *testing.T, d Document) map[string]interface{} {
	t.Helper()
	b, err := json.Marshal(d)
	require.NoError(t, err)
	var m map[string]interface{}
	require.NoError(t, json.Unmarshal(b, &m))
	return m
}

func TestSchemaAcceptsDocuments(t *testing.T) {
	assert.NoError(t, ValidateMapWithSchema(schemaPath, toMap(t, New())))

	d := AddEducation(New())
	d = AddExperience(d)
	d = UpdateExperience(d, d.Experience[0].ID, "startDate", "2020-01-15")
	d = AddSkill(d)
	d = AddProject(d)
	assert.NoError(t, ValidateMapWithSchema(schemaPath, toMap(t, d)))
}

func TestSchemaRejectsBadPayloads(t *testing.T) {
	d := AddSkill(New())
	m := toMap(t, d)

	// unknown skill level
	m["skills"].([]interface{})[0].(map[string]interface{})["level"] = "Ninja"
	assert.Error(t, ValidateMapWithSchema(schemaPath, m))

	// entry without an id
	m = toMap(t, d)
	delete(m["skills"].([]interface{})[0].(map[string]interface{}), "id")
	assert.Error(t, ValidateMapWithSchema(schemaPath, m))

	// malformed date
	d2 := AddExperience(New())
	m = toMap(t, d2)
	m["experience"].([]interface{})[0].(map[string]interface{})["startDate"] = "January 2020"
	assert.Error(t, ValidateMapWithSchema(schemaPath, m))

	// unexpected top-level key
	m = toMap(t, New())
	m["certifications"] = []interface{}{}
	assert.Error(t, ValidateMapWithSchema(schemaPath, m))
}

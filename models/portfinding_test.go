package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchema_Header(t *testing.T) {
	assert.Equal(t,
		[]string{"Port", "Protocol", "State", "Service", "Version"},
		SchemaBasic.Header())
	assert.Equal(t,
		[]string{"Enum", "Port", "Protocol", "State", "Service", "Version", "Hypothesis", "Notes", "Loot"},
		SchemaAnnotated.Header())
}

func TestPortFinding_Row(t *testing.T) {
	f := PortFinding{
		Port:     "80",
		Protocol: "tcp",
		State:    "open",
		Service:  "http",
		Version:  "Apache httpd 2.4.41",
		Enum:     "N",
	}

	basic := f.Row(SchemaBasic)
	require.Len(t, basic, len(SchemaBasic.Header()))
	assert.Equal(t, []string{"80", "tcp", "open", "http", "Apache httpd 2.4.41"}, basic)

	annotated := f.Row(SchemaAnnotated)
	require.Len(t, annotated, len(SchemaAnnotated.Header()))
	assert.Equal(t, []string{"N", "80", "tcp", "open", "http", "Apache httpd 2.4.41", "", "", ""}, annotated)
}

func TestPortFinding_AnnotationFieldsStartEmpty(t *testing.T) {
	f := PortFinding{Port: "22", Protocol: "tcp", State: "open", Service: "ssh"}

	row := f.Row(SchemaAnnotated)
	// Hypothesis, Notes, Loot occupy the last three columns and stay empty.
	assert.Equal(t, []string{"", "", ""}, row[len(row)-3:])
}

package models

// PortFinding represents one normalized port row extracted from nmap output
type PortFinding struct {
	Port     string `json:"port"`     // Port number as written in the scan output (e.g., "80")
	Protocol string `json:"protocol"` // Protocol, lowercased (e.g., "tcp")
	State    string `json:"state"`    // State verbatim (e.g., "open", "open|filtered")
	Service  string `json:"service"`  // Service name verbatim (e.g., "http")
	Version  string `json:"version"`  // Version banner, may be empty

	// Annotation fields for manual triage. The extractor never fills
	// these; they exist so the CSV has somewhere to take notes.
	Enum       string `json:"enum"`       // Enumeration marker, "N" until an analyst flips it
	Hypothesis string `json:"hypothesis"` //
	Notes      string `json:"notes"`      //
	Loot       string `json:"loot"`       //
}

// Schema selects which CSV column set a finding is rendered with
type Schema string

const (
	// SchemaBasic is the plain 5-column port table
	SchemaBasic Schema = "basic"
	// SchemaAnnotated adds the empty triage columns around the port table
	SchemaAnnotated Schema = "annotated"
)

// Header returns the CSV column names for the schema, in fixed order
func (s Schema) Header() []string {
	if s == SchemaBasic {
		return []string{"Port", "Protocol", "State", "Service", "Version"}
	}
	return []string{"Enum", "Port", "Protocol", "State", "Service", "Version", "Hypothesis", "Notes", "Loot"}
}

// Row renders the finding as one CSV row matching Header()'s order
func (f PortFinding) Row(s Schema) []string {
	if s == SchemaBasic {
		return []string{f.Port, f.Protocol, f.State, f.Service, f.Version}
	}
	return []string{f.Enum, f.Port, f.Protocol, f.State, f.Service, f.Version, f.Hypothesis, f.Notes, f.Loot}
}

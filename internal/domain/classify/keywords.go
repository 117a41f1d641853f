package classify

import "github.com/honeycarbs/staffing-intel/internal/domain"

type modalityKeywords struct {
	Modality domain.Modality
	Keywords []string
}

// modalityTable is checked in declaration order; the first hit wins.
var modalityTable = []modalityKeywords{
	{domain.ModalityRadiology, []string{"radiology", "x-ray", "imaging", "radiologic", "diagnostic imaging"}},
	{domain.ModalityMRI, []string{"MRI", "magnetic resonance", "mr tech", "mr technologist"}},
	{domain.ModalityCT, []string{"CT", "computed tomography", "cat scan", "ct tech"}},
	{domain.ModalityEcho, []string{"echo", "echocardiography", "cardiac ultrasound", "echo tech"}},
	{domain.ModalityCathLab, []string{"cath lab", "catheterization", "interventional cardiology", "cardiac cath"}},
	{domain.ModalityInterventional, []string{"interventional", "IR", "vascular", "interventional radiology"}},
}

var urgencyKeywords = []string{"immediate", "ASAP", "urgent", "stat", "emergency coverage", "rush", "critical need"}

var contractKeywords = []string{"travel", "contract", "locum", "temporary", "per diem", "interim"}

var executiveKeywords = []string{"new COO", "new CMO", "new CEO", "appointed", "joins as", "leadership change", "promoted to"}

var expansionKeywords = []string{"expanding", "new department", "service line", "lab space", "facility expansion", "opening new"}

// researchKeywords feed the signals query alongside executive and expansion terms
var researchKeywords = []string{"FDA approval", "trial site", "new program", "research initiative"}

// newsKeywords feed the recent-news query
var newsKeywords = []string{"hiring", "expansion", "acquisition", "partnership", "contract"}

var staffingPlatforms = []string{
	"aya.healthcare",
	"amnhealthcare.com",
	"vivian.com",
	"totalmed.com",
	"crosscountrynurses.com",
	"medicaltravelers.com",
}

var fdaTerms = []string{"fda", "trial", "approval"}

var healthcareKeywords = []string{"healthcare", "hospital", "medical", "clinical", "patient"}

var hiringKeywords = []string{"hiring", "staffing", "recruitment", "positions", "jobs"}

// PlatformOther is returned when a URL matches no known staffing platform
const PlatformOther = "other"

// ModalityNames lists the modality labels in table order
func ModalityNames() []string {
	out := make([]string, 0, len(modalityTable))
	for _, entry := range modalityTable {
		out = append(out, string(entry.Modality))
	}
	return out
}

// ContractKeywords returns a copy of the contract-type terms used in the hiring query
func ContractKeywords() []string { return clone(contractKeywords) }

// ExecutiveKeywords returns a copy of the leadership-change terms
func ExecutiveKeywords() []string { return clone(executiveKeywords) }

// ExpansionKeywords returns a copy of the facility-expansion terms
func ExpansionKeywords() []string { return clone(expansionKeywords) }

// ResearchKeywords returns a copy of the FDA and research terms added to the signals query
func ResearchKeywords() []string { return clone(researchKeywords) }

// NewsKeywords returns a copy of the recent-news query terms
func NewsKeywords() []string { return clone(newsKeywords) }

func clone(in []string) []string {
	return append([]string(nil), in...)
}

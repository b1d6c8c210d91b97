// Package regxml renders the two government XML dialects: the Revisal
// labor-registry filing and the D112 payroll declaration. Field names,
// nesting and the presence of optional elements follow the external filing
// schemas exactly; every field is its own element, never an attribute.
package regxml

import (
	"encoding/xml"
	"fmt"
	"sort"
	"time"

	"github.com/diewo77/go-contracts/internal/models"
)

// RevisalNamespace is the versioned namespace of the registry schema.
const RevisalNamespace = "http://www.inspectiamuncii.ro/revisal/v6"

const dateLayout = "2006-01-02"

type revisalDocument struct {
	XMLName xml.Name `xml:"RegistruSalariati"`
	Xmlns   string   `xml:"xmlns,attr"`

	Header   revisalHeader    `xml:"Header"`
	Employee revisalEmployee  `xml:"Salariat"`
	Contract revisalContract  `xml:"Contract"`
	Changes  *revisalChanges  `xml:"Modificari,omitempty"`
}

type revisalHeader struct {
	EmployerCUI    string `xml:"AngajatorCUI"`
	EmployerName   string `xml:"AngajatorNume"`
	SubmissionDate string `xml:"DataTransmiterii"`
	Operation      string `xml:"TipOperatie"`
}

type revisalEmployee struct {
	Name           string `xml:"Nume"`
	CNP            string `xml:"CNP"`
	Nationality    string `xml:"Cetatenie"`
	Address        string `xml:"Adresa"`
	EducationLevel string `xml:"NivelStudii,omitempty"`
	DocumentType   string `xml:"TipActIdentitate,omitempty"`
	DocumentNumber string `xml:"NumarActIdentitate,omitempty"`
	DocumentExpiry string `xml:"DataExpirareAct,omitempty"`
}

type revisalContract struct {
	Number            string             `xml:"NumarContract"`
	Date              string             `xml:"DataContract,omitempty"`
	Type              string             `xml:"TipContract"`
	StartDate         string             `xml:"DataInceput"`
	EndDate           string             `xml:"DataSfarsit,omitempty"`
	ProbationDays     int                `xml:"PerioadaProba,omitempty"`
	Position          string             `xml:"Functie"`
	CORCode           string             `xml:"CodCOR"`
	Salary            string             `xml:"Salariu"`
	WeeklyHours       string             `xml:"NormaOre"`
	WorkLocation      string             `xml:"LocMunca"`
	WorkingConditions string             `xml:"ConditiiMunca"`
	Allowances        *revisalAllowances `xml:"Sporuri,omitempty"`
}

// revisalAllowances wraps the repeated allowance elements. The wrapper is a
// pointer so a filing without allowances omits <Sporuri> entirely instead of
// emitting an empty element.
type revisalAllowances struct {
	Items []revisalAllowance `xml:"Spor"`
}

type revisalAllowance struct {
	Name   string `xml:"Denumire"`
	Amount string `xml:"Valoare"`
}

type revisalChanges struct {
	Fields []revisalFieldChange `xml:"Camp"`
}

type revisalFieldChange struct {
	Name string `xml:"Nume"`
	Old  string `xml:"ValoareVeche"`
	New  string `xml:"ValoareNoua"`
}

// BuildRevisalXML serializes a submission into the registry dialect.
func BuildRevisalXML(sub *models.RevisalSubmission, employerCUI, employerName string, now time.Time) (string, error) {
	doc := revisalDocument{
		Xmlns: RevisalNamespace,
		Header: revisalHeader{
			EmployerCUI:    employerCUI,
			EmployerName:   employerName,
			SubmissionDate: now.Format(dateLayout),
			Operation:      string(sub.Operation),
		},
		Employee: revisalEmployee{
			Name:           sub.Employee.Name,
			CNP:            sub.Employee.CNP,
			Nationality:    sub.Employee.Nationality,
			Address:        sub.Employee.Address,
			EducationLevel: sub.Employee.EducationLevel,
			DocumentType:   sub.Employee.DocumentType,
			DocumentNumber: sub.Employee.DocumentNumber,
		},
		Contract: revisalContract{
			Number:            sub.Contract.Number,
			Type:              sub.Contract.Type,
			StartDate:         sub.Contract.StartDate.Format(dateLayout),
			ProbationDays:     sub.Contract.ProbationDays,
			Position:          sub.Contract.Position,
			CORCode:           sub.Contract.CORCode,
			Salary:            Amount(sub.Contract.Salary),
			WeeklyHours:       Amount(sub.Contract.WeeklyHours),
			WorkLocation:      sub.Contract.WorkLocation,
			WorkingConditions: sub.Contract.WorkingConditions,
		},
	}
	if sub.Employee.DocumentExpiry != nil {
		doc.Employee.DocumentExpiry = sub.Employee.DocumentExpiry.Format(dateLayout)
	}
	if sub.Contract.Date != nil {
		doc.Contract.Date = sub.Contract.Date.Format(dateLayout)
	}
	if sub.Contract.EndDate != nil {
		doc.Contract.EndDate = sub.Contract.EndDate.Format(dateLayout)
	}
	if len(sub.Contract.Allowances) > 0 {
		allowances := &revisalAllowances{}
		for _, a := range sub.Contract.Allowances {
			allowances.Items = append(allowances.Items, revisalAllowance{
				Name:   a.Name,
				Amount: Amount(a.Amount),
			})
		}
		doc.Contract.Allowances = allowances
	}
	if len(sub.Changes) > 0 {
		changes := &revisalChanges{}
		for _, name := range sortedChangeKeys(sub.Changes) {
			ch := sub.Changes[name]
			changes.Fields = append(changes.Fields, revisalFieldChange{
				Name: name,
				Old:  ch.Old,
				New:  ch.New,
			})
		}
		doc.Changes = changes
	}
	return marshalDocument(doc)
}

// Amount formats a monetary or numeric value to two decimal places, as the
// filing schemas require.
func Amount(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

func sortedChangeKeys(changes map[string]models.FieldChange) []string {
	keys := make([]string, 0, len(changes))
	for k := range changes {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func marshalDocument(doc any) (string, error) {
	body, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", err
	}
	return xml.Header + string(body) + "\n", nil
}

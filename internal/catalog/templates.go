package catalog

// CatalogVersion identifies the clause revision every built-in template
// carries. Bump when any clause text or field declaration changes.
const CatalogVersion = "2024.1"

var baseRequiredFields = []string{
	"employerName", "employerCUI", "employerAddress", "employerRepresentative",
	"employeeName", "employeeCNP", "employeeAddress",
	"position", "corCode", "salary", "startDate", "workLocation",
}

var baseOptionalFields = []string{
	"department", "weeklyHours", "workSchedule", "probationDays",
	"nonCompeteMonths", "nonCompeteScope", "nonCompeteCompensation", "nonCompeteActivities",
	"teleworkDaysPerWeek", "teleworkEquipment", "teleworkAllowance", "teleworkSchedule",
}

func partiesClause(order int) Clause {
	return Clause{
		ID:      "parti",
		TitleRO: "Părțile contractului",
		TitleEN: "Contracting parties",
		BodyRO: "Angajator: {{employerName}}, cu sediul în {{employerAddress}}, CUI {{employerCUI}}, " +
			"reprezentat legal prin {{employerRepresentative}}, și salariat: {{employeeName}}, " +
			"domiciliat în {{employeeAddress}}, CNP {{employeeCNP}}, am încheiat prezentul contract " +
			"individual de muncă în următoarele condiții.",
		BodyEN: "Employer: {{employerName}}, headquartered at {{employerAddress}}, tax id {{employerCUI}}, " +
			"legally represented by {{employerRepresentative}}, and employee: {{employeeName}}, " +
			"residing at {{employeeAddress}}, personal numeric code {{employeeCNP}}, have concluded " +
			"this individual employment contract under the following terms.",
		Type:      ClauseMandatory,
		Variables: []string{"employerName", "employerAddress", "employerCUI", "employerRepresentative", "employeeName", "employeeAddress", "employeeCNP"},
		Order:     order,
		LegalRef:  "Art. 10, Legea 53/2003",
	}
}

func objectClause(order int) Clause {
	return Clause{
		ID:      "obiect",
		TitleRO: "Obiectul contractului",
		TitleEN: "Object of the contract",
		BodyRO: "Salariatul este angajat în funcția de {{position}}, conform Clasificării Ocupațiilor " +
			"din România cod COR {{corCode}}{{#department}}, în cadrul departamentului {{department}}{{/department}}.",
		BodyEN: "The employee is hired for the position of {{position}}, Romanian Classification of " +
			"Occupations (COR) code {{corCode}}{{#department}}, within the {{department}} department{{/department}}.",
		Type:      ClauseMandatory,
		Variables: []string{"position", "corCode", "department"},
		Order:     order,
		LegalRef:  "Art. 17 alin. (3) lit. d), Legea 53/2003",
	}
}

func openEndedDurationClause(order int) Clause {
	return Clause{
		ID:      "durata",
		TitleRO: "Durata contractului",
		TitleEN: "Duration of the contract",
		BodyRO: "Contractul se încheie pe durată nedeterminată, salariatul urmând să înceapă " +
			"activitatea la data de {{startDate}}.",
		BodyEN: "The contract is concluded for an indefinite period; the employee shall begin " +
			"work on {{startDate}}.",
		Type:      ClauseMandatory,
		Variables: []string{"startDate"},
		Order:     order,
		LegalRef:  "Art. 12 alin. (1), Legea 53/2003",
	}
}

func fixedTermDurationClause(order int) Clause {
	return Clause{
		ID:      "durata",
		TitleRO: "Durata contractului",
		TitleEN: "Duration of the contract",
		BodyRO: "Contractul se încheie pe durată determinată, de la data de {{startDate}} până la " +
			"data de {{endDate}}, în condițiile art. 82-84 din Codul muncii.",
		BodyEN: "The contract is concluded for a fixed term, from {{startDate}} until {{endDate}}, " +
			"under articles 82-84 of the Labour Code.",
		Type:      ClauseMandatory,
		Variables: []string{"startDate", "endDate"},
		Order:     order,
		LegalRef:  "Art. 82-84, Legea 53/2003",
	}
}

func workplaceClause(order int) Clause {
	return Clause{
		ID:      "locul_muncii",
		TitleRO: "Locul muncii",
		TitleEN: "Workplace",
		BodyRO: "Activitatea se desfășoară la {{workLocation}}. În lipsa unui loc de muncă fix, " +
			"salariatul își desfășoară activitatea în locurile stabilite de angajator.",
		BodyEN: "Work is performed at {{workLocation}}. In the absence of a fixed workplace, the " +
			"employee works at the locations designated by the employer.",
		Type:      ClauseMandatory,
		Variables: []string{"workLocation"},
		Order:     order,
		LegalRef:  "Art. 17 alin. (3) lit. b), Legea 53/2003",
	}
}

func workingTimeClause(order int) Clause {
	return Clause{
		ID:      "durata_muncii",
		TitleRO: "Durata muncii",
		TitleEN: "Working time",
		BodyRO: "Durata normală a muncii este de {{weeklyHours}} ore pe săptămână" +
			"{{#workSchedule}}, repartizate astfel: {{workSchedule}}{{/workSchedule}}.",
		BodyEN: "Normal working time is {{weeklyHours}} hours per week" +
			"{{#workSchedule}}, scheduled as follows: {{workSchedule}}{{/workSchedule}}.",
		Type:      ClauseMandatory,
		Variables: []string{"weeklyHours", "workSchedule"},
		Order:     order,
		LegalRef:  "Art. 112, Legea 53/2003",
	}
}

func partTimeWorkingTimeClause(order int) Clause {
	return Clause{
		ID:      "durata_muncii",
		TitleRO: "Durata muncii",
		TitleEN: "Working time",
		BodyRO: "Contractul se încheie cu timp parțial, durata muncii fiind de {{weeklyHours}} ore " +
			"pe săptămână{{#workSchedule}}, repartizate astfel: {{workSchedule}}{{/workSchedule}}, " +
			"în condițiile art. 103-107 din Codul muncii.",
		BodyEN: "The contract is concluded part-time, with working time of {{weeklyHours}} hours " +
			"per week{{#workSchedule}}, scheduled as follows: {{workSchedule}}{{/workSchedule}}, " +
			"under articles 103-107 of the Labour Code.",
		Type:      ClauseMandatory,
		Variables: []string{"weeklyHours", "workSchedule"},
		Order:     order,
		LegalRef:  "Art. 103-107, Legea 53/2003",
	}
}

func salaryClause(order int) Clause {
	return Clause{
		ID:      "salariu",
		TitleRO: "Salarizare",
		TitleEN: "Remuneration",
		BodyRO: "Salariul de bază lunar brut este de {{salary}} {{currency}}, plătit o dată pe lună. " +
			"Salariul se plătește prin virament bancar în contul indicat de salariat.",
		BodyEN: "The gross monthly base salary is {{salary}} {{currency}}, paid once a month. The " +
			"salary is paid by bank transfer to the account indicated by the employee.",
		Type:      ClauseMandatory,
		Variables: []string{"salary", "currency"},
		Order:     order,
		LegalRef:  "Art. 159-163, Legea 53/2003",
	}
}

func probationClause(order int) Clause {
	return Clause{
		ID:      "perioada_proba",
		TitleRO: "Perioada de probă",
		TitleEN: "Probation period",
		BodyRO: "Părțile convin o perioadă de probă de {{probationDays}} zile calendaristice, " +
			"care se încheie la data de {{probationEndDate}}. Pe durata perioadei de probă " +
			"contractul poate înceta printr-o notificare scrisă, fără preaviz.",
		BodyEN: "The parties agree on a probation period of {{probationDays}} calendar days, " +
			"ending on {{probationEndDate}}. During probation the contract may be terminated by " +
			"written notice, without a notice period.",
		Type:      ClauseConditional,
		Condition: "probationDays > 0",
		Variables: []string{"probationDays", "probationEndDate"},
		Order:     order,
		LegalRef:  "Art. 31, Legea 53/2003",
	}
}

func leaveClause(order int) Clause {
	return Clause{
		ID:      "concediu",
		TitleRO: "Concediul de odihnă",
		TitleEN: "Annual leave",
		BodyRO: "Salariatul are dreptul la un concediu de odihnă anual plătit de minimum 20 de zile " +
			"lucrătoare, proporțional cu activitatea prestată în anul calendaristic.",
		BodyEN: "The employee is entitled to paid annual leave of at least 20 working days, " +
			"pro-rated to the time worked in the calendar year.",
		Type:     ClauseMandatory,
		Order:    order,
		LegalRef: "Art. 145, Legea 53/2003",
	}
}

func confidentialityClause(order int) Clause {
	return Clause{
		ID:      "confidentialitate",
		TitleRO: "Confidențialitate",
		TitleEN: "Confidentiality",
		BodyRO: "Salariatul se obligă să păstreze confidențialitatea datelor și informațiilor de " +
			"care ia cunoștință în executarea contractului, atât pe durata acestuia cât și după " +
			"încetarea sa.",
		BodyEN: "The employee undertakes to keep confidential the data and information learned in " +
			"the performance of the contract, both during its term and after its termination.",
		Type:     ClauseOptional,
		Order:    order,
		LegalRef: "Art. 26, Legea 53/2003",
	}
}

func nonCompeteClause(order int) Clause {
	return Clause{
		ID:      "neconcurenta",
		TitleRO: "Clauza de neconcurență",
		TitleEN: "Non-compete clause",
		BodyRO: "După încetarea contractului, salariatul se obligă să nu presteze, pe o perioadă de " +
			"{{nonCompete.months}} luni, activități concurente ({{nonCompete.activities}}) în aria " +
			"geografică {{nonCompete.scope}}. În schimb, angajatorul plătește o indemnizație lunară " +
			"de neconcurență de {{nonCompete.compensation}} {{currency}}.",
		BodyEN: "After termination of the contract, the employee undertakes not to perform, for " +
			"{{nonCompete.months}} months, competing activities ({{nonCompete.activities}}) within " +
			"{{nonCompete.scope}}. In exchange, the employer pays a monthly non-compete indemnity " +
			"of {{nonCompete.compensation}} {{currency}}.",
		Type:      ClauseConditional,
		Condition: "nonCompete.months > 0",
		Variables: []string{"nonCompete.months", "nonCompete.activities", "nonCompete.scope", "nonCompete.compensation", "currency"},
		Order:     order,
		LegalRef:  "Art. 21-24, Legea 53/2003",
	}
}

func teleworkClause(order int, mandatory bool) Clause {
	c := Clause{
		ID:      "telemunca",
		TitleRO: "Activitatea de telemuncă",
		TitleEN: "Telework",
		BodyRO: "Salariatul desfășoară activitate de telemuncă {{telework.daysPerWeek}} zile pe " +
			"săptămână{{#telework.schedule}}, conform programului {{telework.schedule}}{{/telework.schedule}}. " +
			"Angajatorul asigură echipamentele necesare ({{telework.equipment}})" +
			"{{#telework.allowance}} și o indemnizație lunară de {{telework.allowance}} {{currency}} " +
			"pentru cheltuielile aferente{{/telework.allowance}}.",
		BodyEN: "The employee teleworks {{telework.daysPerWeek}} days per week" +
			"{{#telework.schedule}}, following the {{telework.schedule}} schedule{{/telework.schedule}}. " +
			"The employer provides the necessary equipment ({{telework.equipment}})" +
			"{{#telework.allowance}} and a monthly allowance of {{telework.allowance}} {{currency}} " +
			"for related expenses{{/telework.allowance}}.",
		Type:      ClauseConditional,
		Condition: "telework.daysPerWeek > 0",
		Variables: []string{"telework.daysPerWeek", "telework.schedule", "telework.equipment", "telework.allowance", "currency"},
		Order:     order,
		LegalRef:  "Legea 81/2018",
	}
	if mandatory {
		c.Type = ClauseMandatory
		c.Condition = ""
	}
	return c
}

func rightsClause(order int) Clause {
	return Clause{
		ID:      "drepturi_obligatii",
		TitleRO: "Drepturi și obligații",
		TitleEN: "Rights and obligations",
		BodyRO: "Drepturile și obligațiile părților sunt cele prevăzute de Codul muncii, de " +
			"contractul colectiv de muncă aplicabil și de regulamentul intern al angajatorului.",
		BodyEN: "The rights and obligations of the parties are those provided by the Labour Code, " +
			"the applicable collective labour agreement and the employer's internal regulations.",
		Type:     ClauseMandatory,
		Order:    order,
		LegalRef: "Art. 37-40, Legea 53/2003",
	}
}

func finalClause(order int) Clause {
	return Clause{
		ID:      "dispozitii_finale",
		TitleRO: "Dispoziții finale",
		TitleEN: "Final provisions",
		BodyRO: "Prezentul contract a fost încheiat în două exemplare, câte unul pentru fiecare " +
			"parte, și se completează cu dispozițiile legislației muncii în vigoare. Orice " +
			"modificare se face prin act adițional semnat de ambele părți.",
		BodyEN: "This contract was concluded in two counterparts, one for each party, and is " +
			"supplemented by the labour legislation in force. Any amendment is made by an addendum " +
			"signed by both parties.",
		Type:     ClauseMandatory,
		Order:    order,
		LegalRef: "Art. 17 alin. (5), Legea 53/2003",
	}
}

// standardClauses is the clause sequence shared by most templates; the
// duration and working-time clauses are swapped per category.
func standardClauses(duration, workingTime Clause, extra ...Clause) []Clause {
	duration.Order = 3
	workingTime.Order = 5
	clauses := []Clause{
		partiesClause(1),
		objectClause(2),
		duration,
		workplaceClause(4),
		workingTime,
		salaryClause(6),
		probationClause(7),
		leaveClause(8),
		confidentialityClause(9),
		nonCompeteClause(10),
	}
	next := 11
	for _, c := range extra {
		c.Order = next
		clauses = append(clauses, c)
		next++
	}
	return append(clauses, rightsClause(next), finalClause(next+1))
}

func withFields(extraRequired ...string) []string {
	out := append([]string{}, baseRequiredFields...)
	return append(out, extraRequired...)
}

// Default builds the built-in template catalog.
func Default() *Catalog {
	return New([]Template{
		{
			ID:             "cim-standard",
			Category:       CategoryStandard,
			Name:           "Contract individual de muncă pe durată nedeterminată",
			Locale:         "ro",
			Clauses:        standardClauses(openEndedDurationClause(3), workingTimeClause(5), teleworkClause(0, false)),
			RequiredFields: baseRequiredFields,
			OptionalFields: baseOptionalFields,
			LegalBasis:     []string{"Legea 53/2003 - Codul muncii", "HG 905/2017"},
			Version:        CatalogVersion,
			Active:         true,
		},
		{
			ID:             "cim-durata-determinata",
			Category:       CategoryFixedTerm,
			Name:           "Contract individual de muncă pe durată determinată",
			Locale:         "ro",
			Clauses:        standardClauses(fixedTermDurationClause(3), workingTimeClause(5), teleworkClause(0, false)),
			RequiredFields: withFields("endDate"),
			OptionalFields: baseOptionalFields,
			LegalBasis:     []string{"Art. 82-87, Legea 53/2003"},
			Version:        CatalogVersion,
			Active:         true,
		},
		{
			ID:             "cim-timp-partial",
			Category:       CategoryPartTime,
			Name:           "Contract individual de muncă cu timp parțial",
			Locale:         "ro",
			Clauses:        standardClauses(openEndedDurationClause(3), partTimeWorkingTimeClause(5)),
			RequiredFields: withFields("weeklyHours"),
			OptionalFields: baseOptionalFields,
			LegalBasis:     []string{"Art. 103-107, Legea 53/2003"},
			Version:        CatalogVersion,
			Active:         true,
		},
		{
			ID:             "cim-telemunca",
			Category:       CategoryTelework,
			Name:           "Contract individual de muncă în regim de telemuncă",
			Locale:         "ro",
			Clauses:        standardClauses(openEndedDurationClause(3), workingTimeClause(5), teleworkClause(0, true)),
			RequiredFields: withFields("teleworkDaysPerWeek", "teleworkEquipment"),
			OptionalFields: baseOptionalFields,
			LegalBasis:     []string{"Legea 81/2018", "Legea 53/2003"},
			Version:        CatalogVersion,
			Active:         true,
		},
		{
			ID:             "cim-agent-munca-temporara",
			Category:       CategoryTemporary,
			Name:           "Contract de muncă temporară",
			Locale:         "ro",
			Clauses:        standardClauses(fixedTermDurationClause(3), workingTimeClause(5)),
			RequiredFields: withFields("endDate"),
			OptionalFields: baseOptionalFields,
			LegalBasis:     []string{"Art. 88-102, Legea 53/2003"},
			Version:        CatalogVersion,
			Active:         true,
		},
		{
			ID:             "cim-ucenicie",
			Category:       CategoryApprenticeship,
			Name:           "Contract de ucenicie la locul de muncă",
			Locale:         "ro",
			Clauses:        standardClauses(fixedTermDurationClause(3), workingTimeClause(5)),
			RequiredFields: withFields("endDate"),
			OptionalFields: baseOptionalFields,
			LegalBasis:     []string{"Legea 279/2005", "Legea 53/2003"},
			Version:        CatalogVersion,
			Active:         true,
		},
		{
			ID:             "cim-internship",
			Category:       CategoryInternship,
			Name:           "Contract de internship",
			Locale:         "ro",
			Clauses:        standardClauses(fixedTermDurationClause(3), workingTimeClause(5)),
			RequiredFields: withFields("endDate"),
			OptionalFields: baseOptionalFields,
			LegalBasis:     []string{"Legea 176/2018"},
			Version:        CatalogVersion,
			Active:         true,
		},
		{
			ID:             "cim-management",
			Category:       CategoryManagement,
			Name:           "Contract individual de muncă pentru funcții de conducere",
			Locale:         "ro",
			Clauses:        standardClauses(openEndedDurationClause(3), workingTimeClause(5), teleworkClause(0, false)),
			RequiredFields: baseRequiredFields,
			OptionalFields: baseOptionalFields,
			LegalBasis:     []string{"Art. 31 alin. (1), Legea 53/2003"},
			Version:        CatalogVersion,
			Active:         true,
		},
		{
			ID:             "cim-sezonier",
			Category:       CategorySeasonal,
			Name:           "Contract individual de muncă pentru activități sezoniere",
			Locale:         "ro",
			Clauses:        standardClauses(fixedTermDurationClause(3), workingTimeClause(5)),
			RequiredFields: withFields("endDate"),
			OptionalFields: baseOptionalFields,
			LegalBasis:     []string{"Art. 83 lit. b), Legea 53/2003"},
			Version:        CatalogVersion,
			Active:         true,
		},
		{
			ID:             "cim-munca-la-domiciliu",
			Category:       CategoryHomeWork,
			Name:           "Contract individual de muncă la domiciliu",
			Locale:         "ro",
			Clauses:        standardClauses(openEndedDurationClause(3), workingTimeClause(5)),
			RequiredFields: baseRequiredFields,
			OptionalFields: baseOptionalFields,
			LegalBasis:     []string{"Art. 108-110, Legea 53/2003"},
			Version:        CatalogVersion,
			Active:         true,
		},
	})
}

package knowledge

// Act describes a statute entry: sections, filing procedures and whatever
// timeline/jurisdiction/deadline detail the act carries.
type Act struct {
	Sections     map[string]string
	Procedures   []string
	Timelines    string
	Jurisdiction map[string]string
	Deadlines    map[string]string
}

// Procedure describes a government process (documents, steps, timeline).
type Procedure struct {
	Documents []string
	Process   []string
	Timeline  string
	Online    string
	Types     []string
	Rights    []string
}

// Scheme describes a central welfare scheme.
type Scheme struct {
	Eligibility string
	Benefit     string
	Application string
	Documents   []string
	Website     string
}

// Base is the static legal knowledge base. It is loaded once at process
// start and is read-only afterwards; the content is illustrative, not
// authoritative legal advice.
type Base struct {
	Acts       map[string]Act
	Procedures map[string]Procedure
	Schemes    map[string]Scheme
	Contacts   map[string]map[string]string
}

// NewBase returns the built-in knowledge base.
func NewBase() *Base {
	return &Base{
		Acts: map[string]Act{
			"RTI Act 2005": {
				Sections: map[string]string{
					"Section 3":  "Right to information",
					"Section 4":  "Obligations of public authorities",
					"Section 6":  "Request for obtaining information",
					"Section 7":  "Disposal of request",
					"Section 18": "Powers and functions of Information Commission",
				},
				Procedures: []string{
					"Submit application with Rs. 10 fee",
					"Specify information required clearly",
					"Provide contact details",
					"Submit to Public Information Officer (PIO)",
				},
				Timelines: "30 days for response, 48 hours for life/liberty issues",
			},
			"Consumer Protection Act 2019": {
				Sections: map[string]string{
					"Section 35": "Jurisdiction of District Commission",
					"Section 58": "Jurisdiction of State Commission",
					"Section 74": "Jurisdiction of National Commission",
				},
				Procedures: []string{
					"File complaint within 2 years",
					"Pay prescribed fee",
					"Attach supporting documents",
					"Choose appropriate forum based on compensation amount",
				},
				Jurisdiction: map[string]string{
					"District": "Up to Rs. 1 crore",
					"State":    "Rs. 1 crore to Rs. 10 crore",
					"National": "Above Rs. 10 crore",
				},
			},
			"Income Tax Act 1961": {
				Deadlines: map[string]string{
					"ITR Filing":    "July 31 for individuals",
					"Audit Reports": "October 31",
					"Tax Payment":   "March 15 for advance tax",
				},
				Sections: map[string]string{
					"Section 80C":  "Deductions up to Rs. 1.5 lakh",
					"Section 80D":  "Medical insurance deductions",
					"Section 234A": "Interest for delay in filing return",
				},
			},
		},
		Procedures: map[string]Procedure{
			"Aadhaar Correction": {
				Documents: []string{"Proof of Identity", "Proof of Address", "Proof of Date of Birth"},
				Process: []string{
					"Visit nearest Aadhaar center",
					"Fill Aadhaar correction form",
					"Submit supporting documents",
					"Pay Rs. 50 fee for demographic updates",
					"Biometric verification if required",
				},
				Timeline: "90 days for processing",
				Online:   "https://uidai.gov.in",
			},
			"Police Complaint": {
				Types: []string{"FIR (Cognizable offenses)", "NCR (Non-cognizable offenses)"},
				Process: []string{
					"Visit nearest police station",
					"Provide written complaint",
					"Get complaint number/FIR copy",
					"Follow up on investigation",
				},
				Rights: []string{
					"Right to file FIR for cognizable offenses",
					"Right to get copy of FIR",
					"Right to legal aid if needed",
				},
			},
		},
		Schemes: map[string]Scheme{
			"PM-KISAN": {
				Eligibility: "Small and marginal farmers with up to 2 hectares land",
				Benefit:     "Rs. 6000 per year in 3 installments",
				Application: "Online at pmkisan.gov.in or through Common Service Centers",
				Documents:   []string{"Land ownership documents", "Aadhaar", "Bank account details"},
			},
			"Ayushman Bharat": {
				Eligibility: "Based on SECC 2011 data or PM-JAY list",
				Benefit:     "Health insurance up to Rs. 5 lakh per family",
				Application: "Generate Ayushman Card at hospitals or CSCs",
				Website:     "https://pmjay.gov.in",
			},
		},
		Contacts: map[string]map[string]string{
			"National Helplines": {
				"Women Helpline":          "1091",
				"Child Helpline":          "1098",
				"Senior Citizen Helpline": "14567",
				"Tourist Helpline":        "1363",
				"Railway Enquiry":         "139",
				"Income Tax Helpline":     "1961",
			},
			"Government Portals": {
				"Digital India": "https://digitalindia.gov.in",
				"India.gov.in":  "https://india.gov.in",
				"MyGov":         "https://mygov.in",
				"RTI Portal":    "https://rtionline.gov.in",
			},
		},
	}
}

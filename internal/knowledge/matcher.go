package knowledge

import (
	"fmt"
	"strings"
)

// FindRelevant scans the query for domain triggers and returns the matching
// knowledge blocks concatenated in trigger-check order, separated by blank
// lines. A query matching nothing returns the empty string; a query matching
// everything returns every block. The check order is fixed, not ranked.
func (b *Base) FindRelevant(query string) string {
	q := strings.ToLower(query)
	var sb strings.Builder

	if strings.Contains(q, "rti") || strings.Contains(q, "right to information") {
		rti := b.Acts["RTI Act 2005"]
		sb.WriteString("**RTI Act 2005 Information:**\n")
		fmt.Fprintf(&sb, "Timeline: %s\n", rti.Timelines)
		fmt.Fprintf(&sb, "Procedure: %s\n\n", strings.Join(rti.Procedures, ", "))
	}

	if strings.Contains(q, "consumer") || strings.Contains(q, "complaint") {
		consumer := b.Acts["Consumer Protection Act 2019"]
		sb.WriteString("**Consumer Protection Act 2019:**\n")
		sb.WriteString("Jurisdiction: District (up to Rs. 1 crore), State (Rs. 1-10 crore), National (above Rs. 10 crore)\n")
		fmt.Fprintf(&sb, "Procedure: %s\n\n", strings.Join(consumer.Procedures, ", "))
	}

	if strings.Contains(q, "aadhaar") || strings.Contains(q, "aadhar") {
		aadhaar := b.Procedures["Aadhaar Correction"]
		sb.WriteString("**Aadhaar Correction Process:**\n")
		fmt.Fprintf(&sb, "Documents: %s\n", strings.Join(aadhaar.Documents, ", "))
		fmt.Fprintf(&sb, "Process: %s\n", strings.Join(aadhaar.Process, " -> "))
		fmt.Fprintf(&sb, "Timeline: %s\n\n", aadhaar.Timeline)
	}

	if strings.Contains(q, "police") || strings.Contains(q, "fir") || strings.Contains(q, "complaint") {
		police := b.Procedures["Police Complaint"]
		sb.WriteString("**Police Complaint Process:**\n")
		fmt.Fprintf(&sb, "Types: %s\n", strings.Join(police.Types, ", "))
		fmt.Fprintf(&sb, "Rights: %s\n\n", strings.Join(police.Rights, ", "))
	}

	if strings.Contains(q, "pm kisan") || strings.Contains(q, "farmer") {
		kisan := b.Schemes["PM-KISAN"]
		sb.WriteString("**PM-KISAN Scheme:**\n")
		fmt.Fprintf(&sb, "Eligibility: %s\n", kisan.Eligibility)
		fmt.Fprintf(&sb, "Benefit: %s\n", kisan.Benefit)
		fmt.Fprintf(&sb, "Application: %s\n\n", kisan.Application)
	}

	return sb.String()
}

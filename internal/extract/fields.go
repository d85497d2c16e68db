package extract

import (
	"regexp"
	"strconv"
	"strings"
)

// Record holds the fields pulled out of one recruitment-request
// document. A nil field means its pattern did not match.
type Record struct {
	CompanyName  *string
	Established  *string
	BusinessType *string
	NumEmployees *int
	MainBusiness *string
	Website      *string
	Location     *string

	RecruitmentYear     *string
	ApplicationDeadline *string
	JobCategory         *string
	Positions           *int
	JobDescription      *string
	Qualifications      *string
	EmploymentType      *string
	WorkHours           *string
	RequiredDocuments   *string
	InternStipend       *string
	Salary              *string
	OtherRequirements   *string
}

// Usable reports whether the record can be persisted. A document
// without a company name is unprocessable.
func (r *Record) Usable() bool {
	return r.CompanyName != nil && *r.CompanyName != ""
}

type fieldPattern struct {
	name string
	re   *regexp.Regexp
}

// fieldPatterns assumes the fixed recruitment-request template: each
// capture is bounded by the label of the field that follows it in the
// document, so other layouts will not match. First occurrence of a
// label wins.
var fieldPatterns = []fieldPattern{
	{"company_name", regexp.MustCompile(`(?s)회사명\s*(.*?)\s*사업자번호`)},
	{"established", regexp.MustCompile(`설립\s*일자\s*([\d\.\s]+)`)},
	{"upte", regexp.MustCompile(`업태\s*([^\n]+)`)},
	{"jongmok", regexp.MustCompile(`종목\s*([^\n]+)`)},
	{"num_employees", regexp.MustCompile(`상시근로자\s*수\s*(\d+)`)},
	{"main_business", regexp.MustCompile(`주요\s*사업\s*내용\s*([\s\S]+?)(?:홈페이지|대표자명)`)},
	{"website", regexp.MustCompile(`홈페이지\s*(https?://\S+)`)},
	{"location", regexp.MustCompile(`소재지\s*([\s\S]+?)\s*대표자명`)},
	{"recruitment_year", regexp.MustCompile(`요청일:\s*(\d{4})년`)},
	{"application_deadline", regexp.MustCompile(`요청일:\s*([^\n]+)`)},
	{"job_category", regexp.MustCompile(`모집직종\s*([^\n]+)`)},
	{"positions", regexp.MustCompile(`모집인원\s*(\d+)\s*명`)},
	{"job_description", regexp.MustCompile(`직무내용\s*\(구체적\)\s*([\s\S]+?)\s*근무\s*형태`)},
	{"qualifications", regexp.MustCompile(`자격요건\s*\(우대자격\)\s*([\s\S]+?)\s*근무\s*시간`)},
	{"employment_type", regexp.MustCompile(`근무\s*형태\s*([\s\S]+?)\s*자격요건`)},
	{"work_hours", regexp.MustCompile(`근무\s*시간\s*([\s\S]+?)\s*접수\s*서류`)},
	{"required_documents", regexp.MustCompile(`접수\s*서류\s*([\s\S]+?)\s*4대\s*사회보험`)},
	{"intern_stipend", regexp.MustCompile(`실습\s*수당\s*\(현장실습\s*시\)\s*(.*?)(?:\n|$)`)},
	{"salary", regexp.MustCompile(`급여\s*\(정규직\s*채용\s*시\)\s*(.*?)(?:\n|$)`)},
	{"other_requirements", regexp.MustCompile(`기타\s*요구사항\s*([\s\S]+?)\s*요청일`)},
}

// Parse runs every field pattern over the raw text and assembles the
// structured record, including the derived fields.
func Parse(text string) *Record {
	raw := make(map[string]*string, len(fieldPatterns))
	for _, fp := range fieldPatterns {
		if m := fp.re.FindStringSubmatch(text); m != nil {
			raw[fp.name] = cleanValue(m[1])
		}
	}

	rec := &Record{
		CompanyName:         raw["company_name"],
		Established:         raw["established"],
		MainBusiness:        raw["main_business"],
		Website:             raw["website"],
		Location:            raw["location"],
		RecruitmentYear:     raw["recruitment_year"],
		ApplicationDeadline: raw["application_deadline"],
		JobCategory:         raw["job_category"],
		JobDescription:      raw["job_description"],
		Qualifications:      raw["qualifications"],
		EmploymentType:      raw["employment_type"],
		WorkHours:           raw["work_hours"],
		RequiredDocuments:   raw["required_documents"],
		InternStipend:       raw["intern_stipend"],
		Salary:              raw["salary"],
		OtherRequirements:   raw["other_requirements"],
	}
	rec.BusinessType = deriveBusinessType(raw["upte"], raw["jongmok"])
	rec.NumEmployees = parseCount(raw["num_employees"])
	rec.Positions = parseCount(raw["positions"])
	return rec
}

// cleanValue trims the capture and collapses inner newlines to spaces.
func cleanValue(v string) *string {
	v = strings.ReplaceAll(strings.TrimSpace(v), "\n", " ")
	return &v
}

// business_type is "업태 / 종목" when both matched, otherwise whichever
// one did.
func deriveBusinessType(upte, jongmok *string) *string {
	u := deref(upte)
	j := deref(jongmok)
	switch {
	case u != "" && j != "":
		v := u + " / " + j
		return &v
	case u != "":
		return upte
	case j != "":
		return jongmok
	}
	return nil
}

// parseCount coerces a captured numeric string to an int; anything
// malformed becomes nil instead of an error.
func parseCount(v *string) *int {
	if v == nil {
		return nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(*v))
	if err != nil {
		return nil
	}
	return &n
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

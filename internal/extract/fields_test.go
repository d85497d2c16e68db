package extract_test

import (
	"testing"

	"github.com/team-dbase/dbase-ai/internal/extract"
)

// sampleText follows the fixed recruitment-request template the
// patterns are tuned to.
const sampleText = `현장실습 및 채용 요청서
회사명 테스트컴퍼니 사업자번호 123-45-67890
설립 일자 2015. 03. 21
업태 정보통신업
종목 소프트웨어 개발
상시근로자 수 12
주요 사업 내용 기업용 백엔드 솔루션 개발
및 운영
홈페이지 https://example.co.kr
소재지 서울시 용산구 회나무로12길 27
대표자명 홍길동
모집직종 백엔드 개발자
모집인원 2 명
직무내용 (구체적) Go 기반 API 서버 개발
근무 형태 정규직
자격요건 (우대자격) 정보처리기능사
근무 시간 09:00 ~ 18:00
접수 서류 이력서, 자기소개서
4대 사회보험 가입
실습 수당 (현장실습 시) 월 80만원
급여 (정규직 채용 시) 연봉 3000만원
기타 요구사항 성실한 분
요청일: 2025년 7월 10일
`

func strv(s *string) string {
	if s == nil {
		return "<nil>"
	}
	return *s
}

func TestParse_FullTemplate(t *testing.T) {
	rec := extract.Parse(sampleText)

	want := map[string]struct {
		got  *string
		want string
	}{
		"company_name":         {rec.CompanyName, "테스트컴퍼니"},
		"established":          {rec.Established, "2015. 03. 21"},
		"business_type":        {rec.BusinessType, "정보통신업 / 소프트웨어 개발"},
		"main_business":        {rec.MainBusiness, "기업용 백엔드 솔루션 개발 및 운영"},
		"website":              {rec.Website, "https://example.co.kr"},
		"location":             {rec.Location, "서울시 용산구 회나무로12길 27"},
		"recruitment_year":     {rec.RecruitmentYear, "2025"},
		"application_deadline": {rec.ApplicationDeadline, "2025년 7월 10일"},
		"job_category":         {rec.JobCategory, "백엔드 개발자"},
		"job_description":      {rec.JobDescription, "Go 기반 API 서버 개발"},
		"qualifications":       {rec.Qualifications, "정보처리기능사"},
		"employment_type":      {rec.EmploymentType, "정규직"},
		"work_hours":           {rec.WorkHours, "09:00 ~ 18:00"},
		"required_documents":   {rec.RequiredDocuments, "이력서, 자기소개서"},
		"intern_stipend":       {rec.InternStipend, "월 80만원"},
		"salary":               {rec.Salary, "연봉 3000만원"},
		"other_requirements":   {rec.OtherRequirements, "성실한 분"},
	}
	for name, c := range want {
		if c.got == nil || *c.got != c.want {
			t.Errorf("%s = %q, want %q", name, strv(c.got), c.want)
		}
	}

	if rec.NumEmployees == nil || *rec.NumEmployees != 12 {
		t.Errorf("num_employees = %v, want 12", rec.NumEmployees)
	}
	if rec.Positions == nil || *rec.Positions != 2 {
		t.Errorf("positions = %v, want 2", rec.Positions)
	}
	if !rec.Usable() {
		t.Error("record with a company name should be usable")
	}
}

func TestParse_CompanyNameTrimmed(t *testing.T) {
	rec := extract.Parse("회사명   한국상사   사업자번호 111-22-33333")
	if rec.CompanyName == nil || *rec.CompanyName != "한국상사" {
		t.Errorf("company_name = %q, want %q", strv(rec.CompanyName), "한국상사")
	}
}

func TestParse_FirstLabelWins(t *testing.T) {
	text := "회사명 첫번째회사 사업자번호 111\n회사명 두번째회사 사업자번호 222\n"
	rec := extract.Parse(text)
	if rec.CompanyName == nil || *rec.CompanyName != "첫번째회사" {
		t.Errorf("company_name = %q, want first occurrence %q", strv(rec.CompanyName), "첫번째회사")
	}
}

func TestParse_BusinessTypeDerivation(t *testing.T) {
	cases := []struct {
		name string
		text string
		want *string
	}{
		{"both", "업태 제조업\n종목 금속가공\n", ptr("제조업 / 금속가공")},
		{"upte only", "업태 제조업\n", ptr("제조업")},
		{"jongmok only", "종목 금속가공\n", ptr("금속가공")},
		{"neither", "관련 없는 텍스트\n", nil},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := extract.Parse(c.text).BusinessType
			switch {
			case c.want == nil && got != nil:
				t.Errorf("business_type = %q, want nil", *got)
			case c.want != nil && (got == nil || *got != *c.want):
				t.Errorf("business_type = %q, want %q", strv(got), *c.want)
			}
		})
	}
}

func TestParse_NumEmployees(t *testing.T) {
	if rec := extract.Parse("상시근로자 수 12\n"); rec.NumEmployees == nil || *rec.NumEmployees != 12 {
		t.Errorf("num_employees = %v, want 12", rec.NumEmployees)
	}
	// the pattern only captures digits, so non-numeric text never matches
	if rec := extract.Parse("상시근로자 수 abc\n"); rec.NumEmployees != nil {
		t.Errorf("num_employees = %v, want nil for non-numeric text", *rec.NumEmployees)
	}
	if rec := extract.Parse("직원이 많은 회사\n"); rec.NumEmployees != nil {
		t.Errorf("num_employees = %v, want nil when the label is absent", *rec.NumEmployees)
	}
}

func TestParse_NoLabels(t *testing.T) {
	rec := extract.Parse("이 문서에는 어떤 라벨도 없습니다.")
	if rec.Usable() {
		t.Fatal("record without a company name must not be usable")
	}
	if rec.CompanyName != nil || rec.Established != nil || rec.BusinessType != nil ||
		rec.NumEmployees != nil || rec.MainBusiness != nil || rec.Website != nil ||
		rec.Location != nil || rec.RecruitmentYear != nil || rec.ApplicationDeadline != nil ||
		rec.JobCategory != nil || rec.Positions != nil || rec.JobDescription != nil ||
		rec.Qualifications != nil || rec.EmploymentType != nil || rec.WorkHours != nil ||
		rec.RequiredDocuments != nil || rec.InternStipend != nil || rec.Salary != nil ||
		rec.OtherRequirements != nil {
		t.Error("every field should be nil when no label matches")
	}
}

func TestParse_EmptyText(t *testing.T) {
	if rec := extract.Parse(""); rec.Usable() {
		t.Error("empty text must not produce a usable record")
	}
}

func ptr(s string) *string { return &s }

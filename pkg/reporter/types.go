package reporter

// Reporter types shipped with the framework.
const (
	TypeDocumentation     = "UT_DOCUMENTATION_REPORTER"
	TypeCoverageHTML      = "UT_COVERAGE_HTML_REPORTER"
	TypeTeamCity          = "UT_TEAMCITY_REPORTER"
	TypeXUnit             = "UT_XUNIT_REPORTER"
	TypeCoveralls         = "UT_COVERALLS_REPORTER"
	TypeCoverageSonar     = "UT_COVERAGE_SONAR_REPORTER"
	TypeSonarTest         = "UT_SONAR_TEST_REPORTER"
	TypeCoverageCobertura = "UT_COVERAGE_COBERTURA_REPORTER"
	TypeJUnit             = "UT_JUNIT_REPORTER"
	TypeTFSJUnit          = "UT_TFS_JUNIT_REPORTER"
	TypeDebug             = "UT_DEBUG_REPORTER"
)

// Known lists the framework's reporter types.
func Known() []string {
	return []string{
		TypeDocumentation,
		TypeCoverageHTML,
		TypeTeamCity,
		TypeXUnit,
		TypeCoveralls,
		TypeCoverageSonar,
		TypeSonarTest,
		TypeCoverageCobertura,
		TypeJUnit,
		TypeTFSJUnit,
		TypeDebug,
	}
}

func newOfType(typeName string) *Reporter {
	return &Reporter{typeName: SanitizeTypeName(typeName)}
}

// NewDocumentation returns an uninitialized documentation reporter.
func NewDocumentation() *Reporter { return newOfType(TypeDocumentation) }

// NewCoverageHTML returns an uninitialized HTML coverage reporter.
func NewCoverageHTML() *Reporter { return newOfType(TypeCoverageHTML) }

// NewTeamCity returns an uninitialized TeamCity reporter.
func NewTeamCity() *Reporter { return newOfType(TypeTeamCity) }

// NewXUnit returns an uninitialized xUnit reporter.
func NewXUnit() *Reporter { return newOfType(TypeXUnit) }

// NewCoveralls returns an uninitialized Coveralls coverage reporter.
func NewCoveralls() *Reporter { return newOfType(TypeCoveralls) }

// NewCoverageSonar returns an uninitialized Sonar coverage reporter.
func NewCoverageSonar() *Reporter { return newOfType(TypeCoverageSonar) }

// NewSonarTest returns an uninitialized Sonar test reporter.
func NewSonarTest() *Reporter { return newOfType(TypeSonarTest) }

// NewCoverageCobertura returns an uninitialized Cobertura coverage reporter.
func NewCoverageCobertura() *Reporter { return newOfType(TypeCoverageCobertura) }

// NewJUnit returns an uninitialized JUnit reporter.
func NewJUnit() *Reporter { return newOfType(TypeJUnit) }

// NewTFSJUnit returns an uninitialized TFS JUnit reporter.
func NewTFSJUnit() *Reporter { return newOfType(TypeTFSJUnit) }

// NewDebug returns an uninitialized debug reporter.
func NewDebug() *Reporter { return newOfType(TypeDebug) }

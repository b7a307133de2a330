package report

type Platform string

const (
	PlatformLinkedIn Platform = "linkedin"
	PlatformNaukri   Platform = "naukri"
	PlatformUnstop   Platform = "unstop"
	PlatformDataTeam Platform = "data_team"
)

var platformLabels = map[Platform]string{
	PlatformLinkedIn: "LinkedIn",
	PlatformNaukri:   "Naukri",
	PlatformUnstop:   "Unstop",
	PlatformDataTeam: "Data Team",
}

func (p Platform) IsValid() bool {
	_, ok := platformLabels[p]
	return ok
}

func (p Platform) Label() string {
	if l, ok := platformLabels[p]; ok {
		return l
	}
	return string(p)
}

const StatusAll = "all"

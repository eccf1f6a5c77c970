package dtos

// InvitationEnvelope is one recipient of the batched group-invitation mail
// together with the fields rendered into the dynamic template.
type InvitationEnvelope struct {
	Email string
	Name  string
	Data  InvitationTemplateData
}

type InvitationTemplateData struct {
	Username         string `json:"username"`
	Date             string `json:"date"`
	Time             string `json:"time"`
	ProjectName      string `json:"projectName"`
	WebsiteURL       string `json:"websiteUrl"`
	OrganizationName string `json:"organizationName"`
	ProjectAddress   string `json:"projectAddress"`
	GroupLeaderName  string `json:"groupLeaderName"`
	GroupName        string `json:"groupName"`
	Task             string `json:"task"`
}

func (d InvitationTemplateData) ToMap() map[string]any {
	return map[string]any{
		"username":         d.Username,
		"date":             d.Date,
		"time":             d.Time,
		"projectName":      d.ProjectName,
		"websiteUrl":       d.WebsiteURL,
		"organizationName": d.OrganizationName,
		"projectAddress":   d.ProjectAddress,
		"groupLeaderName":  d.GroupLeaderName,
		"groupName":        d.GroupName,
		"task":             d.Task,
	}
}

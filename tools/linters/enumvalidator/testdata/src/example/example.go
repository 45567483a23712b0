package example

type Role string

const (
	RoleAdmin Role = "admin"
	RoleAgent Role = "agent"
)

type CampaignStatus string

const (
	CampaignStatusDraft     CampaignStatus = "draft"
	CampaignStatusScheduled CampaignStatus = "scheduled"
)

type User struct {
	Role Role
}

type Campaign struct {
	Status CampaignStatus
	Name   string
}

func bad() {
	u := &User{}
	u.Role = "owner" // want "enum field Role assigned string literal"

	c := &Campaign{}
	c.Status = "paused" // want "enum field Status assigned string literal"

	_ = Campaign{Status: "sending", Name: "promo"} // want "enum field Status assigned string literal"
}

func good() {
	u := &User{}
	u.Role = RoleAdmin

	c := &Campaign{Status: CampaignStatusDraft, Name: "promo"}
	c.Status = CampaignStatusScheduled
}

func alsoGood() {
	role := RoleAgent
	u := &User{Role: role}
	_ = u
}

package entity

// WorkspaceDetails mirrors the metadata Instantly returns for the
// credential's own workspace.
type WorkspaceDetails struct {
	ID                      string   `json:"workspace_id"`
	Name                    string   `json:"workspace_name"`
	Owner                   string   `json:"owner,omitempty"`
	PlanID                  string   `json:"plan_id,omitempty"`
	OrgLogoURL              string   `json:"org_logo_url,omitempty"`
	OrgClientDomain         string   `json:"org_client_domain,omitempty"`
	PlanIDCRM               string   `json:"plan_id_crm,omitempty"`
	PlanIDLeadFinder        string   `json:"plan_id_leadfinder,omitempty"`
	PlanIDVerification      string   `json:"plan_id_verification,omitempty"`
	PlanIDWebsiteVisitor    string   `json:"plan_id_website_visitor,omitempty"`
	PlanIDInboxPlacement    string   `json:"plan_id_inbox_placement,omitempty"`
	TimestampCreated        string   `json:"timestamp_created,omitempty"`
	TimestampUpdated        string   `json:"timestamp_updated,omitempty"`
	DefaultOpportunityValue *float64 `json:"default_opportunity_value,omitempty"`
}

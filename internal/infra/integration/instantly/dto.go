package instantly

type emailListResponse struct {
	Items             []email `json:"items"`
	NextStartingAfter string  `json:"next_starting_after"`
}

type email struct {
	ID               string `json:"id"`
	FromAddressEmail string `json:"from_address_email"`
	FromAddressJSON  []struct {
		Address string `json:"address"`
		Name    string `json:"name"`
	} `json:"from_address_json"`
	Subject string `json:"subject"`
	Body    struct {
		Text string `json:"text"`
		HTML string `json:"html"`
	} `json:"body"`
	TimestampEmail   string `json:"timestamp_email"`
	TimestampCreated string `json:"timestamp_created"`
	ThreadID         string `json:"thread_id"`
	Lead             string `json:"lead"`
	// UEType 2 marks a message received from the lead; sent ones are 1/3/4.
	UEType int `json:"ue_type"`
}

const ueTypeReceived = 2

type analyticsOverviewResponse struct {
	EmailsSentCount        float64 `json:"emails_sent_count"`
	ContactedCount         float64 `json:"contacted_count"`
	NewLeadsContactedCount float64 `json:"new_leads_contacted_count"`
	OpenCountUnique        float64 `json:"open_count_unique"`
	ReplyCountUnique       float64 `json:"reply_count_unique"`
	BouncedCount           float64 `json:"bounced_count"`
	UnsubscribedCount      float64 `json:"unsubscribed_count"`
	TotalInterested        float64 `json:"total_interested"`
	TotalOpportunities     float64 `json:"total_opportunities"`
}

type workspaceResponse struct {
	ID                      string   `json:"id"`
	Name                    string   `json:"name"`
	Owner                   string   `json:"owner"`
	PlanID                  string   `json:"plan_id"`
	OrgLogoURL              string   `json:"org_logo_url"`
	OrgClientDomain         string   `json:"org_client_domain"`
	PlanIDCRM               string   `json:"plan_id_crm"`
	PlanIDLeadFinder        string   `json:"plan_id_leadfinder"`
	PlanIDVerification      string   `json:"plan_id_verification"`
	PlanIDWebsiteVisitor    string   `json:"plan_id_website_visitor"`
	PlanIDInboxPlacement    string   `json:"plan_id_inbox_placement"`
	TimestampCreated        string   `json:"timestamp_created"`
	TimestampUpdated        string   `json:"timestamp_updated"`
	DefaultOpportunityValue *float64 `json:"default_opportunity_value"`
}

package emailbison

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

type repliesResponse struct {
	Data []reply `json:"data"`
	Meta struct {
		CurrentPage int `json:"current_page"`
		LastPage    int `json:"last_page"`
	} `json:"meta"`
}

type reply struct {
	ID               int64  `json:"id"`
	UUID             string `json:"uuid"`
	FromEmailAddress string `json:"from_email_address"`
	FromName         string `json:"from_name"`
	Subject          string `json:"subject"`
	TextBody         string `json:"text_body"`
	DateReceived     string `json:"date_received"`
	Folder           string `json:"folder"`
	Interested       bool   `json:"interested"`
	ParentID         *int64 `json:"parent_id"`
	LeadID           *int64 `json:"lead_id"`
}

type statsResponse struct {
	Data struct {
		EmailsSent              flexInt `json:"emails_sent"`
		TotalLeadsContacted     flexInt `json:"total_leads_contacted"`
		Opened                  flexInt `json:"opened"`
		UniqueRepliesPerContact flexInt `json:"unique_replies_per_contact"`
		Bounced                 flexInt `json:"bounced"`
		Unsubscribed            flexInt `json:"unsubscribed"`
		Interested              flexInt `json:"interested"`
	} `json:"data"`
}

// flexInt accepts both JSON numbers and numeric strings; EmailBison returns
// either depending on the endpoint version.
type flexInt int64

func (f *flexInt) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*f = 0
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		if s == "" {
			*f = 0
			return nil
		}
		b = []byte(s)
	}
	v, err := strconv.ParseFloat(string(b), 64)
	if err != nil {
		return fmt.Errorf("not a number: %s", b)
	}
	*f = flexInt(v)
	return nil
}

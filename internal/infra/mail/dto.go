package mail

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string

	From     string // sender address on outgoing mail
	AlertsTo string // brokerage inbox for lead/contact alerts
}

type LeadAlertData struct {
	Name      string
	Email     string
	Phone     string
	Interest  string
	Summary   string
	LeadScore int
}

type ContactAlertData struct {
	Name    string
	Email   string
	Phone   string
	Message string
}

type FollowUpData struct {
	Name string
}

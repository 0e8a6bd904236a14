package dto

// DashboardResponse holds the administrator's overview counters.
type DashboardResponse struct {
	Categories           int `json:"categories"`
	Businesses           int `json:"businesses"`
	PendingBusinesses    int `json:"pending_businesses"`
	VerifiedBusinesses   int `json:"verified_businesses"`
	Auditors             int `json:"auditors"`
	Suppliers            int `json:"suppliers"`
	AssignedAudits       int `json:"assigned_audits"`
	SubmittedAudits      int `json:"submitted_audits"`
	PendingSupplierTasks int `json:"pending_supplier_tasks"`
	OpenFraudAlerts      int `json:"open_fraud_alerts"`
}

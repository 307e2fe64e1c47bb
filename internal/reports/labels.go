package reports

// eventTypeLabels maps vendor event-type tags to report display names.
var eventTypeLabels = map[string]string{
	"lead_added":                    "New lead",
	"lead_deleted":                  "Lead deleted",
	"lead_restored":                 "Lead restored",
	"lead_status_changed":           "Lead stage changed",
	"lead_linked":                   "Lead linked",
	"lead_unlinked":                 "Lead unlinked",
	"contact_added":                 "New contact",
	"contact_deleted":               "Contact deleted",
	"contact_restored":              "Contact restored",
	"contact_linked":                "Contact linked",
	"contact_unlinked":              "Contact unlinked",
	"company_added":                 "New company",
	"company_deleted":               "Company deleted",
	"company_restored":              "Company restored",
	"company_linked":                "Company linked",
	"company_unlinked":              "Company unlinked",
	"customer_added":                "New customer",
	"customer_deleted":              "Customer deleted",
	"customer_status_changed":       "Customer stage changed",
	"customer_linked":               "Customer linked",
	"customer_unlinked":             "Customer unlinked",
	"task_added":                    "New task",
	"task_deleted":                  "Task deleted",
	"task_completed":                "Task completed",
	"task_type_changed":             "Task type changed",
	"task_text_changed":             "Task text changed",
	"task_deadline_changed":         "Task deadline changed",
	"task_result_added":             "Task result added",
	"incoming_call":                 "Incoming call",
	"outgoing_call":                 "Outgoing call",
	"incoming_chat_message":         "Incoming message",
	"outgoing_chat_message":         "Outgoing message",
	"entity_direct_message":         "Internal chat message",
	"incoming_sms":                  "Incoming SMS",
	"outgoing_sms":                  "Outgoing SMS",
	"entity_tag_added":              "Tags added",
	"entity_tag_deleted":            "Tags removed",
	"entity_linked":                 "Entity linked",
	"entity_unlinked":               "Entity unlinked",
	"sale_field_changed":            "Budget field changed",
	"name_field_changed":            "Name field changed",
	"ltv_field_changed":             "Purchase total changed",
	"custom_field_value_changed":    "Field value changed",
	"entity_responsible_changed":    "Responsible user changed",
	"robot_replied":                 "Robot replied",
	"intent_identified":             "Intent identified",
	"nps_rate_added":                "New NPS rating",
	"link_followed":                 "Link followed",
	"transaction_added":             "Purchase added",
	"common_note_added":             "New note",
	"common_note_deleted":           "Note deleted",
	"attachment_note_added":         "New file attached",
	"targeting_in_note_added":       "Added to retargeting",
	"targeting_out_note_added":      "Removed from retargeting",
	"geo_note_added":                "New geo note",
	"service_note_added":            "New system note",
	"site_visit_note_added":         "Site visit",
	"message_to_cashier_note_added": "Message to cashier",
	"key_action_completed":          "Key action completed",
	"entity_merged":                 "Entities merged",
}

// EventLabel returns the display name for an event type, or the raw tag when
// no translation exists.
func EventLabel(eventType string) string {
	if label, ok := eventTypeLabels[eventType]; ok {
		return label
	}
	return eventType
}

package tui

const (
	pageMenu    = "menu"
	pageClients = "clients"
	pageAdd     = "add"
	pageDelete  = "delete"
	pageUpdate  = "update"
	pageFind    = "find"
	pageSave    = "save"
)

// NavigateTo asks the RootModel to switch the active page. Payload, when
// set, is delivered to the new page as the next message.
type NavigateTo struct {
	Page    string
	Payload any
}

// actionDoneMsg carries the result alert of a finished action back to the
// menu.
type actionDoneMsg struct {
	alert alert
}

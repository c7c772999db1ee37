package editor

// MarkupKind selects the keyboard attached to a reply. The transport layer
// renders these into the delivery channel's native keyboards; the service
// itself never touches transport types.
type MarkupKind int

const (
	MarkupNone MarkupKind = iota
	// MarkupMainMenu shows the "Show place card" / "Show unfilled places" buttons.
	MarkupMainMenu
	// MarkupEditBar shows one button per editable card field.
	MarkupEditBar
	// MarkupCategoryChoices shows the three category buttons.
	MarkupCategoryChoices
	// MarkupSaveExit shows the Exit / Save reply keyboard.
	MarkupSaveExit
	// MarkupForceReply forces a reply prompt (company name entry).
	MarkupForceReply
	// MarkupShareLocation shows a location-request keyboard.
	MarkupShareLocation
)

// Reply is one outbound message produced by a state-machine handler.
type Reply struct {
	Text   string
	Markup MarkupKind
}

// Operator-facing message texts.
const (
	msgNotAuthorized   = "Your ID is not authorized"
	msgNotStarted      = "Send /start to begin."
	msgChooseAction    = "Hi! Choose an action:"
	msgEnterName       = "Please enter the name of the company you want to know about."
	msgInvalidName     = "Invalid name. Please enter a valid name with only letters, spaces, and apostrophes."
	msgCompanyFound    = "Company found."
	msgCompanyCreated  = "Company not found. A new one was created."
	msgLookupFailed    = "Could not reach the place registry, please try again."
	msgChooseField     = "Choose a field to edit:"
	msgSaveOrExit      = "Save when you are finished, or exit to cancel changes"
	msgInvalidField    = "Invalid field."
	msgCardFirst       = "Load a place card first."
	msgChooseCategory  = "Choose a category:"
	msgInvalidCategory = "Invalid category. Please choose one of the following:"
	msgInvalidMapLink  = "Invalid map link. Provide a link using the format https://maps.app.goo.gl/{LocationID}."
	msgSendPhotos      = "Send photos below and then do /finish"
	msgNoPhotos        = "No photos received yet. Send photos, then do /finish."
	msgUploading       = "Initializing uploading process..."
	msgUploaded        = "Photos have been uploaded"
	msgUploadFailed    = "Error while uploading photos, try again"
	msgSaved           = "You saved the place card"
	msgSaveFailed      = "Could not save the place card, your edits are kept. Please try again."
	msgExited          = "You have returned to the main menu"
	msgNoFieldSelected = "No field selected. Pick a field from the edit bar first."
	msgShareLocation   = "Please share your location to find unfilled places near you:"
	msgMirrorDisabled  = "Unfilled-places lookup is not available."

	// showCardPhrase re-displays the current card when typed with no field
	// selected.
	showCardPhrase = "show information"
)

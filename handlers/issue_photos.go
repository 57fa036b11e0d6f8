package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
	"github.com/pocketbase/pocketbase/tools/filesystem"
)

// HandleIssuePhotoUpload appends an uploaded photo to the issue's photo
// field.
// Route: POST /issues/{id}/photos
func HandleIssuePhotoUpload(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		issueID := e.Request.PathValue("id")
		issue, err := app.FindRecordById("nursery_issues", issueID)
		if err != nil {
			return ErrorToast(e, 404, "Issue not found")
		}

		if err := e.Request.ParseMultipartForm(5 << 20); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Photo too large or invalid form data")
		}

		_, header, err := e.Request.FormFile("photo")
		if err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Please select a photo to upload")
		}

		file, err := filesystem.NewFileFromMultipart(header)
		if err != nil {
			log.Printf("issue_photo: could not read upload: %v", err)
			return ErrorToast(e, 500, "Could not read photo")
		}

		photos := issue.GetStringSlice("photos")
		if len(photos) >= 5 {
			return ErrorToast(e, 400, "An issue can hold at most 5 photos")
		}

		issue.Set("photos+", file)
		if err := app.Save(issue); err != nil {
			log.Printf("issue_photo: could not save issue %s: %v", issueID, err)
			return ErrorToast(e, 500, "Could not save photo")
		}

		SetToast(e, "success", "Photo uploaded")
		return e.Redirect(303, "/issues/"+issueID)
	}
}

package service

import (
	"fmt"

	"github.com/bnema/mediaferry/internal/domain"
)

const (
	textProcessingStarted = "Your video is being processed. I'll notify you when it's ready to view."
	textQueueError        = "Sorry, there was an error queuing your video. Please try again later."
	textProcessingFailed  = "Sorry, there was an error processing your video. Please try again later."
	textInvalidPath       = "❌ *Invalid path*\n\nThe path must end with a file name and extension, for example `Movies/My Movie/My Movie.mkv`."

	answerJobNotFound   = "Job not found or expired"
	answerStarted       = "Processing started!"
	answerChoosePath    = "Choose a new path"
	answerCopied        = "Path copied!"
	answerSendPath      = "Send the path relative to the media root"
	answerUnknownAction = "Unknown action"
	answerError         = "Error processing request"
)

func promptText(job *domain.PendingJob, roots PathRoots) string {
	return fmt.Sprintf("📁 *Proposed location*\n\nFile: `%s`\nPath: `%s`\n\nAccept this path or change it.",
		job.FileName, roots.Display(job.ProposedPath))
}

func changeText(job *domain.PendingJob, roots PathRoots) string {
	return fmt.Sprintf("🗂 *Choose where to save*\n\nFile: `%s`\nCurrent path: `%s`",
		job.FileName, roots.Display(job.ProposedPath))
}

func customPathText(job *domain.PendingJob, roots PathRoots) string {
	return fmt.Sprintf("✍️ *Custom path*\n\nReply with the path relative to the media root, including the file name.\nCurrent path: `%s`",
		roots.Display(job.ProposedPath))
}

func acceptedText(job *domain.PendingJob, roots PathRoots) string {
	return fmt.Sprintf("✅ *Path confirmed!*\n\nSaving to: `%s`", roots.Display(job.ProposedPath))
}

func customPathSetText(path string, roots PathRoots) string {
	return fmt.Sprintf("Custom path set: `%s`", roots.Display(path))
}

func savedText(path string, roots PathRoots) string {
	return fmt.Sprintf("✅ Your video has been processed successfully and saved to:\n`%s`", roots.Display(path))
}

func button(text string, a domain.Action) domain.Button {
	return domain.Button{Text: text, Data: a.Encode()}
}

func confirmKeyboard(jobID string) [][]domain.Button {
	return [][]domain.Button{
		{
			button("✅ Accept", domain.NewAction(domain.ActionAccept, jobID)),
			button("✏️ Change", domain.NewAction(domain.ActionChange, jobID)),
		},
		{
			button("📋 Copy Path", domain.NewAction(domain.ActionCopy, jobID)),
		},
	}
}

func changeKeyboard(jobID string) [][]domain.Button {
	return [][]domain.Button{
		{
			button("🎬 Movies", domain.NewPathAction(jobID, domain.PathTypeMovies)),
			button("📺 Shows", domain.NewPathAction(jobID, domain.PathTypeShows)),
		},
		{
			button("📁 General", domain.NewPathAction(jobID, domain.PathTypeGeneral)),
			button("✍️ Custom", domain.NewAction(domain.ActionCustom, jobID)),
		},
		{
			button("📋 Copy Path", domain.NewAction(domain.ActionCopy, jobID)),
			button("↩️ Back", domain.NewAction(domain.ActionBack, jobID)),
		},
	}
}

func customKeyboard(jobID string) [][]domain.Button {
	return [][]domain.Button{
		{button("❌ Cancel", domain.NewAction(domain.ActionChange, jobID))},
	}
}

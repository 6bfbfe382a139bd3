package composer

// HistoryLimit is how many recent conversation turns accompany a general
// query to the completion service.
const HistoryLimit = 10

// maxDiagLen caps the diagnostic suffix on recovery replies, trimmed on a
// rune boundary.
const maxDiagLen = 80

const (
	replyTaskAdded  = "Your task **'%s'** has been added successfully. 📝"
	replyClarifyAdd = "I couldn't understand what task you want to add. Could you please be more specific?"

	replyListEmptyPending   = "You don't have any pending tasks right now. You're all caught up! 🎉"
	replyListEmptyCompleted = "You don't have any completed tasks yet. Time to get started! 💪"
	replyListEmptyAll       = "You don't have any tasks on your list right now. Would you like to add one? ✏️"
	replyListPending        = "Here are your pending tasks (%d total):\n%s\n\nGood luck with these! 💪"
	replyListCompleted      = "Here are your completed tasks (%d total):\n%s\n\nGreat job! 🎉"
	replyListAll            = "Here are your tasks (Total: %d, Pending: %d, Completed: %d):\n%s"

	replyTaskCompleted    = "Task **'%s'** has been marked as completed. 🎉 Way to go!"
	replyTaskReopened     = "Task **'%s'** has been marked as incomplete again. You can complete it later when you're ready. 💪"
	replyCompleteNotFound = "I couldn't find a specific task to mark as complete. You might have already completed all your tasks! 🎉"

	replyTaskDeleted    = "The task **'%s'** has been deleted successfully. 🗑️"
	replyDeleteNotFound = "I couldn't find a task to delete. Your list might be empty."

	replyNothingToUpdate = "You don't have any tasks to update. Maybe add one first? ✏️"
	replyClarifyUpdate   = "I couldn't understand what you'd like to change the task to. Could you be more specific?"
	replyTaskUpdated     = "Task has been updated to **'%s'**. ✏️"
	replyUpdateNotFound  = "I couldn't find the task you want to update. Could you check the name and try again?"

	replySearchNone = "🔍 No tasks found matching '%s'"
	replySearchOne  = "🔍 Found 1 task matching '%s':\n%s"
	replySearchMany = "🔍 Found %d tasks matching '%s':\n%s"

	replyCannedAdd      = "Task has been processed successfully. 📝"
	replyCannedList     = "Here are your tasks. ✅"
	replyCannedComplete = "Task has been marked as completed. 🎉"
	replyCannedDelete   = "Task has been deleted successfully. 🗑️"
	replyCannedUpdate   = "Task has been updated successfully. ✏️"

	replyNotUnderstood = "I'm sorry, I didn't quite understand that command. Could you please rephrase it? For example: 'Add a task to buy groceries' or 'Show me my pending tasks'."
	replySafetyBlock   = "I can't process that request. Could you please rephrase it in a different way?"

	replyRecovery      = "Sorry, I ran into a problem handling your %s request. Please try again. (%s)"
	replyRecoveryOther = "Sorry, I ran into a problem handling that request. Please try again. (%s)"

	replyHelp = `🤖 Here's what you can ask me:
• Add a task: "Add presentation prep #work high priority due tomorrow"
• List tasks: "Show me my pending tasks"
• Complete a task: "Complete task 2" or "Mark groceries as done"
• Update a task: "Rename groceries to weekly shopping"
• Delete a task: "Delete the task about rent"
• Recurring tasks: "Water plants every 3 days"
• Reminders: "Remind me 30 minutes before"
• Search: "Find tasks about meeting"`
)

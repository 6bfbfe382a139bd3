package http

import (
	"todochat/internal/chat"
)

// --- Request DTOs ---

type chatReq struct {
	Message string `json:"message" binding:"required,max=2000"`
}

func (r chatReq) validate() error { return nil }

// --- Response DTOs ---

type chatResp struct {
	Success            bool               `json:"success"`
	Action             string             `json:"action"`
	Message            string             `json:"message"`
	TaskID             string             `json:"task_id,omitempty"`
	Task               *chat.TaskSnapshot `json:"task,omitempty"`
	OperationPerformed bool               `json:"operation_performed"`
	Response           string             `json:"response"`
}

func newChatResp(res chat.CommandResult) chatResp {
	return chatResp{
		Success:            true,
		Action:             string(res.Intent),
		Message:            res.Reply,
		TaskID:             res.TaskID,
		Task:               res.Task,
		OperationPerformed: res.Mutated,
		Response:           res.Reply,
	}
}

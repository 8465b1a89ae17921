package http

import (
	"strings"

	"voice-assistant/internal/assistant"
	"voice-assistant/internal/model"
)

const (
	defaultChatLogLimit = 20
	maxChatLogLimit     = 200
	maxUtteranceLength  = 2000
)

// --- Request DTOs ---

type turnReq struct {
	Utterance string `json:"utterance" binding:"required"`
	UserID    string `json:"-"`
}

func (r turnReq) validate() error {
	if strings.TrimSpace(r.Utterance) == "" {
		return assistant.ErrEmptyUtterance
	}
	if len(r.Utterance) > maxUtteranceLength {
		return errUtteranceTooLong
	}
	return nil
}

func (r turnReq) toScope() model.Scope {
	return model.Scope{Channel: model.ChannelHTTP, UserID: r.UserID}
}

func (r turnReq) toInput() assistant.ProcessInput {
	return assistant.ProcessInput{Utterance: r.Utterance}
}

// ---

type chatLogReq struct {
	Limit int `form:"limit"`
}

func (r chatLogReq) validate() error { return nil }

func (r chatLogReq) limit() int {
	if r.Limit <= 0 {
		return defaultChatLogLimit
	}
	if r.Limit > maxChatLogLimit {
		return maxChatLogLimit
	}
	return r.Limit
}

// --- Response DTOs ---

type taskResp struct {
	Kind     string `json:"kind"`
	Argument string `json:"argument,omitempty"`
}

type resultResp struct {
	Task     taskResp `json:"task"`
	OK       bool     `json:"ok"`
	Status   string   `json:"status,omitempty"`
	Deferred bool     `json:"deferred,omitempty"`
	Skipped  bool     `json:"skipped,omitempty"`
}

type turnResp struct {
	TurnID    string       `json:"turn_id"`
	Utterance string       `json:"utterance"`
	Tasks     []taskResp   `json:"tasks"`
	Results   []resultResp `json:"results"`
	Notices   []string     `json:"notices,omitempty"`
	Answer    string       `json:"answer"`
	Exit      bool         `json:"exit,omitempty"`
}

func (h *handler) newTurnResp(r assistant.Reply) turnResp {
	resp := turnResp{
		TurnID:    r.TurnID,
		Utterance: r.Utterance,
		Tasks:     make([]taskResp, len(r.Tasks)),
		Results:   make([]resultResp, len(r.Results)),
		Notices:   r.Notices,
		Answer:    r.Answer,
		Exit:      r.Exit,
	}
	for i, t := range r.Tasks {
		resp.Tasks[i] = taskResp{Kind: t.Kind.String(), Argument: t.Argument}
	}
	for i, res := range r.Results {
		resp.Results[i] = resultResp{
			Task:     taskResp{Kind: res.Task.Kind.String(), Argument: res.Task.Argument},
			OK:       res.OK,
			Status:   res.Status,
			Deferred: res.Deferred,
			Skipped:  res.Skipped,
		}
	}
	return resp
}

type chatEntryResp struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatLogResp struct {
	Entries []chatEntryResp `json:"entries"`
}

func (h *handler) newChatLogResp(entries []model.ChatEntry) chatLogResp {
	resp := chatLogResp{Entries: make([]chatEntryResp, len(entries))}
	for i, e := range entries {
		resp.Entries[i] = chatEntryResp{Role: string(e.Role), Content: e.Content}
	}
	return resp
}

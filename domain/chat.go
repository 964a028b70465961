package domain

// ChatReply is what the conversational resolver returns for one message.
type ChatReply struct {
	MessageID string       `json:"message_id"`
	Text      string       `json:"text"`
	Items     []ScoredCard `json:"items"`
}

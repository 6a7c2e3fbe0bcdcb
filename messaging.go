package rentora

import (
	"context"
	"fmt"
)

// MessagingService handles conversations between renters and landlords.
type MessagingService struct {
	client *Client
}

// SendMessageRequest is the payload for Send.
type SendMessageRequest struct {
	RecipientID int64  `json:"recipientId"`
	PropertyID  int64  `json:"propertyId,omitempty"`
	Content     string `json:"content"`
}

// Conversations returns all conversations of the current user.
func (s *MessagingService) Conversations(ctx context.Context) ([]Conversation, error) {
	var resp []Conversation
	if err := s.client.get(ctx, "/conversations", nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// ConversationMessages returns the messages of one conversation.
func (s *MessagingService) ConversationMessages(ctx context.Context, conversationID int64) ([]Message, error) {
	var resp []Message
	if err := s.client.get(ctx, fmt.Sprintf("/conversations/%d/messages", conversationID), nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// Send delivers a message to another user.
func (s *MessagingService) Send(ctx context.Context, req SendMessageRequest) (*Message, error) {
	var resp Message
	if err := s.client.post(ctx, "/messages", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Messages returns all messages of the current user across conversations.
func (s *MessagingService) Messages(ctx context.Context) ([]Message, error) {
	var resp []Message
	if err := s.client.get(ctx, "/messages", nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

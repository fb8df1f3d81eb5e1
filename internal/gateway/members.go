package gateway

import (
	"context"

	"fitsync/pkg/models"
)

// ListMembers fetches all enrolled members.
func (c *Client) ListMembers(ctx context.Context) ([]models.Member, error) {
	var members []models.Member
	if err := c.get(ctx, "ListMembers", "/members", nil, &members); err != nil {
		return nil, err
	}
	for i := range members {
		members[i].Normalize()
	}
	return members, nil
}

// CreateMember enrolls a new member and returns the persisted record.
func (c *Client) CreateMember(ctx context.Context, input models.MemberInput) (models.Member, error) {
	var member models.Member
	if err := c.post(ctx, "CreateMember", "/members", input, &member); err != nil {
		return models.Member{}, err
	}
	member.Normalize()
	return member, nil
}

// UpdateMember updates an existing member.
func (c *Client) UpdateMember(ctx context.Context, id string, input models.MemberInput) (models.Member, error) {
	var member models.Member
	if err := c.put(ctx, "UpdateMember", "/members/"+id, input, &member); err != nil {
		return models.Member{}, err
	}
	member.Normalize()
	return member, nil
}

// DeleteMember removes a member record.
func (c *Client) DeleteMember(ctx context.Context, id string) error {
	return c.delete(ctx, "DeleteMember", "/members/"+id)
}

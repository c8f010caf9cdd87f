// Package entity contains the core business objects of the project.
package entity

import (
	"time"
)

// Subscription is a directed edge from a subscriber to the channel they follow.
type Subscription struct {
	ID         string    `json:"_id"`
	Subscriber string    `json:"subscriber"` // Id of the following user.
	Channel    string    `json:"channel"`    // Id of the followed user.
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// ChannelProfile is the public page of a channel with its subscription counters.
type ChannelProfile struct {
	ID                string `json:"_id"`
	FullName          string `json:"fullName"`
	Username          string `json:"username"`
	Email             string `json:"email"`
	Avatar            string `json:"avatar"`
	CoverImage        string `json:"coverImage"`
	SubscribersCount  int    `json:"subscribersCount"`
	SubscribedToCount int    `json:"channelsSubscribedToCount"`
	IsSubscribed      bool   `json:"isSubscribed"` // Whether the viewing user follows this channel.
}

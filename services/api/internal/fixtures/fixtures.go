// Package fixtures holds the demo data every store is seeded with, plus the
// static bundles served by the dashboard and analytics views.
package fixtures

import (
	"time"

	"craftledger/services/api/internal/entity"

	"github.com/shopspring/decimal"
)

const (
	DemoUserID    = "u1"
	DemoCreatorID = "c1"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func Creators() []entity.Creator {
	return []entity.Creator{
		{
			ID:      DemoCreatorID,
			Name:    "Alex Dev",
			Bio:     "Full-stack developer sharing tutorials on React, Node.js, and Cloudflare Workers. Join my community for exclusive content and source code!",
			Avatar:  "https://i.pravatar.cc/150?u=alexdev",
			Balance: decimal.RequireFromString("7450.50"),
		},
	}
}

func Tiers() []entity.Tier {
	return []entity.Tier{
		{ID: "t1", CreatorID: DemoCreatorID, Name: "Explorer", Price: 9, Rank: 1, Benefits: []string{"Access to basic posts", "Community chat access", "Monthly newsletter"}},
		{ID: "t2", CreatorID: DemoCreatorID, Name: "Creator Pro", Price: 29, Rank: 2, Benefits: []string{"All Explorer benefits", "Exclusive video tutorials", "Source code downloads"}},
		{ID: "t3", CreatorID: DemoCreatorID, Name: "VIP Access", Price: 99, Rank: 3, Benefits: []string{"All Creator Pro benefits", "Monthly 1-on-1 call", "Early access to content"}},
	}
}

func Content() []entity.ContentItem {
	none := []entity.Attachment{}
	return []entity.ContentItem{
		{ID: "content1", CreatorID: DemoCreatorID, Title: "Building a SaaS with Cloudflare Workers", Type: entity.ContentTypeVideo, TierID: "t2", PublishedAt: date("2023-10-26"), Status: entity.StatusPublished, Attachments: none},
		{ID: "content2", CreatorID: DemoCreatorID, Title: "Project Source Code: SaaS Boilerplate", Type: entity.ContentTypeDownload, TierID: "t2", PublishedAt: date("2023-10-26"), Status: entity.StatusPublished, Attachments: []entity.Attachment{{URL: "#", Name: "source-code.zip"}}},
		{ID: "content3", CreatorID: DemoCreatorID, Title: "Weekly Q&A Session", Type: entity.ContentTypePost, TierID: "t1", PublishedAt: date("2023-10-20"), Status: entity.StatusPublished, Attachments: none},
		{ID: "content4", CreatorID: DemoCreatorID, Title: "Advanced Durable Objects Patterns", Type: entity.ContentTypeVideo, TierID: "t3", PublishedAt: date("2023-11-05"), Status: entity.StatusScheduled, Attachments: none},
		{ID: "content5", CreatorID: DemoCreatorID, Title: "New Course Announcement (Draft)", Type: entity.ContentTypePost, TierID: "t1", PublishedAt: date("2023-11-01"), Status: entity.StatusDraft, Attachments: none},
	}
}

func Subscriptions() []entity.Subscription {
	return []entity.Subscription{
		{ID: entity.SubscriptionID(DemoUserID, DemoCreatorID), UserID: DemoUserID, CreatorID: DemoCreatorID, TierID: "t2", Active: true},
	}
}

func UserTokens() []entity.UserTokens {
	return []entity.UserTokens{{UserID: DemoUserID, Balance: 1250}}
}

func Transactions() []entity.TokenTransaction {
	return []entity.TokenTransaction{
		{ID: "tx1", UserID: DemoUserID, Amount: 500, Reason: entity.PurchaseReason, Ts: date("2023-10-25")},
		{ID: "tx2", UserID: DemoUserID, CreatorID: DemoCreatorID, Amount: -50, Reason: `Tip for "SaaS with CF" post`, Ts: date("2023-10-26")},
		{ID: "tx3", UserID: DemoUserID, Amount: 1000, Reason: entity.PurchaseReason, Ts: date("2023-10-22")},
	}
}

func TopTippers() []entity.TopTipper {
	return []entity.TopTipper{
		{User: entity.UserProfile{ID: "u2", Name: "Bob Fan", Avatar: "https://i.pravatar.cc/150?u=bobfan"}, Amount: 500},
		{User: entity.UserProfile{ID: "u3", Name: "Charlie Supporter", Avatar: "https://i.pravatar.cc/150?u=charlie"}, Amount: 250},
		{User: entity.UserProfile{ID: "u4", Name: "Diana Enthusiast", Avatar: "https://i.pravatar.cc/150?u=diana"}, Amount: 100},
	}
}

func TokenPackages() []entity.TokenPackage {
	return []entity.TokenPackage{
		{Amount: 100, Price: 1.00},
		{Amount: 500, Price: 4.50, Popular: true},
		{Amount: 1000, Price: 8.00},
		{Amount: 5000, Price: 35.00},
	}
}

func Analytics() entity.Analytics {
	return entity.Analytics{
		Earnings: []entity.EarningsPoint{
			{Month: "May", Earnings: 1860},
			{Month: "Jun", Earnings: 3050},
			{Month: "Jul", Earnings: 2370},
			{Month: "Aug", Earnings: 4730},
			{Month: "Sep", Earnings: 3090},
			{Month: "Oct", Earnings: 4140},
		},
		Subscribers: []entity.SubscribersPoint{
			{Month: "May", Subscribers: 186},
			{Month: "Jun", Subscribers: 205},
			{Month: "Jul", Subscribers: 237},
			{Month: "Aug", Subscribers: 273},
			{Month: "Sep", Subscribers: 309},
			{Month: "Oct", Subscribers: 342},
		},
		TopContent: []entity.ContentPerformance{
			{ContentID: "content1", Title: "Building a SaaS with Cloudflare Workers", Views: 12500, Earnings: 1250},
			{ContentID: "content2", Title: "Project Source Code: SaaS Boilerplate", Views: 8200, Earnings: 980},
			{ContentID: "content3", Title: "Weekly Q&A Session", Views: 5400, Earnings: 430},
		},
	}.WithTotals()
}

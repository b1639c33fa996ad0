package main

import (
	"flag"

	"miniblog/app/services"
	"miniblog/global"
	"miniblog/initialize"
)

var samplePosts = []struct {
	Title   string
	Content string
	Tags    []string
}{
	{"Welcome to the blog", "This is the first post on a brand new blog. More to come soon.", []string{"welcome", "meta"}},
	{"Getting started with Go", "A short walkthrough of setting up a Go workspace and writing your first program.", []string{"go", "tutorial"}},
	{"Thoughts on pagination", "Offset pagination is simple and good enough for small datasets like this one.", []string{"design"}},
	{"Tagging conventions", "Keep tags short, lowercase, and reuse existing ones where possible.", []string{"meta", "tags"}},
	{"On writing plain text", "Plain text posts age well. No markup, no surprises, easy to search.", []string{"writing"}},
}

func main() {
	configPath := flag.String("config", "", "Path to YAML config file")
	flag.Parse()

	app, err := initialize.Build(*configPath)
	if err != nil {
		global.Logger.Fatal().Err(err).Msg("startup failed")
	}

	user, _, err := app.AuthSvc.Register("testuser", "test@example.com", "password123")
	if err != nil {
		global.Logger.Fatal().Err(err).Msg("create test user")
	}
	for _, sp := range samplePosts {
		if _, err := app.PostSvc.Create(user.ID, services.PostInput{Title: sp.Title, Content: sp.Content, Tags: sp.Tags}); err != nil {
			global.Logger.Fatal().Err(err).Str("title", sp.Title).Msg("create post")
		}
	}
	global.Logger.Info().Str("user", user.Username).Int("posts", len(samplePosts)).Msg("seed complete")
}

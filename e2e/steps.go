package e2e

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/cucumber/godog"

	"mergington/internal/activity/models"
)

// RegisterSteps registers all step definitions.
func RegisterSteps(ctx *godog.ScenarioContext, tc *TestContext) {
	ctx.Step(`^the activities service is running$`, tc.serviceIsRunning)

	ctx.Step(`^I request the activity list$`, tc.requestActivityList)
	ctx.Step(`^I sign up "([^"]*)" for "([^"]*)"$`, tc.signUp)
	ctx.Step(`^I unregister "([^"]*)" from "([^"]*)"$`, tc.unregister)
	ctx.Step(`^I GET "([^"]*)"$`, tc.get)

	ctx.Step(`^the response status should be (\d+)$`, tc.responseStatusShouldBe)
	ctx.Step(`^the response message should contain "([^"]*)"$`, tc.responseMessageShouldContain)
	ctx.Step(`^the response detail should contain "([^"]*)"$`, tc.responseDetailShouldContain)
	ctx.Step(`^the response header "([^"]*)" should equal "([^"]*)"$`, tc.responseHeaderShouldEqual)
	ctx.Step(`^the "([^"]*)" roster should have (\d+) participants$`, tc.rosterShouldHaveCount)
	ctx.Step(`^the "([^"]*)" roster should include "([^"]*)"$`, tc.rosterShouldInclude)
	ctx.Step(`^the "([^"]*)" roster should not include "([^"]*)"$`, tc.rosterShouldNotInclude)
	ctx.Step(`^the "([^"]*)" roster should be \[([^\]]*)\]$`, tc.rosterShouldBe)
}

func (tc *TestContext) serviceIsRunning() error {
	if tc.Server == nil {
		return fmt.Errorf("server not started")
	}
	return nil
}

func (tc *TestContext) requestActivityList() error {
	return tc.GET("/activities")
}

func (tc *TestContext) get(path string) error {
	return tc.GET(path)
}

func (tc *TestContext) signUp(email, activity string) error {
	path := fmt.Sprintf("/activities/%s/signup?email=%s",
		url.PathEscape(activity), url.QueryEscape(email))
	return tc.POST(path)
}

func (tc *TestContext) unregister(email, activity string) error {
	path := fmt.Sprintf("/activities/%s/signup/%s",
		url.PathEscape(activity), url.PathEscape(email))
	return tc.DELETE(path)
}

func (tc *TestContext) responseStatusShouldBe(status int) error {
	if tc.LastResponse == nil {
		return fmt.Errorf("no response recorded")
	}
	if tc.LastResponse.StatusCode != status {
		return fmt.Errorf("expected status %d, got %d (body: %s)",
			status, tc.LastResponse.StatusCode, string(tc.LastResponseBody))
	}
	return nil
}

func (tc *TestContext) responseMessageShouldContain(text string) error {
	return tc.responseFieldShouldContain("message", text)
}

func (tc *TestContext) responseDetailShouldContain(text string) error {
	return tc.responseFieldShouldContain("detail", text)
}

func (tc *TestContext) responseFieldShouldContain(field, text string) error {
	var body map[string]string
	if err := json.Unmarshal(tc.LastResponseBody, &body); err != nil {
		return fmt.Errorf("response is not a JSON object: %w", err)
	}
	value, ok := body[field]
	if !ok {
		return fmt.Errorf("response has no %q field: %s", field, string(tc.LastResponseBody))
	}
	if !strings.Contains(value, text) {
		return fmt.Errorf("expected %q to contain %q", value, text)
	}
	return nil
}

func (tc *TestContext) responseHeaderShouldEqual(header, expected string) error {
	if tc.LastResponse == nil {
		return fmt.Errorf("no response recorded")
	}
	if got := tc.LastResponse.Header.Get(header); got != expected {
		return fmt.Errorf("expected header %s=%q, got %q", header, expected, got)
	}
	return nil
}

func (tc *TestContext) fetchRoster(activity string) ([]string, error) {
	if err := tc.GET("/activities"); err != nil {
		return nil, err
	}
	var activities map[string]models.Activity
	if err := json.Unmarshal(tc.LastResponseBody, &activities); err != nil {
		return nil, err
	}
	record, ok := activities[activity]
	if !ok {
		return nil, fmt.Errorf("activity %q not in list response", activity)
	}
	return record.Participants, nil
}

func (tc *TestContext) rosterShouldHaveCount(activity string, count int) error {
	roster, err := tc.fetchRoster(activity)
	if err != nil {
		return err
	}
	if len(roster) != count {
		return fmt.Errorf("expected %d participants in %q, got %d: %v", count, activity, len(roster), roster)
	}
	return nil
}

func (tc *TestContext) rosterShouldInclude(activity, email string) error {
	roster, err := tc.fetchRoster(activity)
	if err != nil {
		return err
	}
	for _, participant := range roster {
		if participant == email {
			return nil
		}
	}
	return fmt.Errorf("expected %q in %q roster: %v", email, activity, roster)
}

func (tc *TestContext) rosterShouldNotInclude(activity, email string) error {
	err := tc.rosterShouldInclude(activity, email)
	if err == nil {
		return fmt.Errorf("expected %q to be absent from %q roster", email, activity)
	}
	if strings.HasPrefix(err.Error(), "expected") {
		return nil
	}
	return err
}

func (tc *TestContext) rosterShouldBe(activity, expected string) error {
	roster, err := tc.fetchRoster(activity)
	if err != nil {
		return err
	}

	var want []string
	for _, entry := range strings.Split(expected, ",") {
		entry = strings.TrimSpace(strings.Trim(strings.TrimSpace(entry), `"`))
		if entry != "" {
			want = append(want, entry)
		}
	}

	if len(roster) != len(want) {
		return fmt.Errorf("expected roster %v, got %v", want, roster)
	}
	for i := range want {
		if roster[i] != want[i] {
			return fmt.Errorf("expected roster %v, got %v", want, roster)
		}
	}
	return nil
}

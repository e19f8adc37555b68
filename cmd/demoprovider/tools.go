package main

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
)

type calculatorArgs struct {
	Operation string  `json:"operation" jsonschema:"one of add, subtract, multiply, divide"`
	A         float64 `json:"a" jsonschema:"first operand"`
	B         float64 `json:"b" jsonschema:"second operand"`
}

type bookMeetingArgs struct {
	Attendees []string `json:"attendees" jsonschema:"people attending the meeting"`
	Date      string   `json:"date" jsonschema:"meeting date as YYYY-MM-DD"`
	Time      string   `json:"time" jsonschema:"start time as HH:MM"`
	Duration  int      `json:"duration,omitempty" jsonschema:"duration in minutes"`
	Topic     string   `json:"topic,omitempty" jsonschema:"meeting topic"`
}

func newServer() *sdk.Server {
	server := sdk.NewServer(&sdk.Implementation{Name: "demoprovider", Version: "v1.0.0"}, nil)
	sdk.AddTool(server, &sdk.Tool{
		Name:        "calculator",
		Description: "Performs basic arithmetic on two numbers",
	}, calculate)
	sdk.AddTool(server, &sdk.Tool{
		Name:        "book_meeting",
		Description: "Books a meeting with the given attendees",
	}, bookMeeting)
	return server
}

func calculate(_ context.Context, _ *sdk.CallToolRequest, in calculatorArgs) (*sdk.CallToolResult, any, error) {
	var v float64
	switch in.Operation {
	case "add":
		v = in.A + in.B
	case "subtract":
		v = in.A - in.B
	case "multiply":
		v = in.A * in.B
	case "divide":
		if in.B == 0 {
			return nil, nil, errors.New("division by zero")
		}
		v = in.A / in.B
	default:
		return nil, nil, fmt.Errorf("unsupported operation %q", in.Operation)
	}
	return textResult(strconv.FormatFloat(v, 'f', -1, 64)), nil, nil
}

func bookMeeting(_ context.Context, _ *sdk.CallToolRequest, in bookMeetingArgs) (*sdk.CallToolResult, any, error) {
	if len(in.Attendees) == 0 {
		return nil, nil, errors.New("at least one attendee is required")
	}
	start, err := time.Parse("2006-01-02 15:04", in.Date+" "+in.Time)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid date or time: %w", err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "已预约 %s 的会议，参会人：%s", start.Format("2006-01-02 15:04"), strings.Join(in.Attendees, "、"))
	if in.Duration > 0 {
		fmt.Fprintf(&b, "，时长 %d 分钟", in.Duration)
	}
	if in.Topic != "" {
		fmt.Fprintf(&b, "，主题：%s", in.Topic)
	}
	return textResult(b.String()), nil, nil
}

func textResult(text string) *sdk.CallToolResult {
	return &sdk.CallToolResult{Content: []sdk.Content{&sdk.TextContent{Text: text}}}
}

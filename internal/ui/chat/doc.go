// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the agent chat view for the pelorus TUI.
//
// The view owns a textinput for queries, a viewport with the rendered
// conversation, and slash commands for agent introspection:
//
//	/clear        reset the conversation and backend memory
//	/attach       stage a document for the next query
//	/status       show the agent status
//	/tools        list available agent tools
//	/examples     show example queries
//	/memory       show remembered conversation turns
//	/save         persist the conversation under ~/.pelorus/transcripts
//	/transcripts  list saved transcripts
//	/export       write the conversation to a Markdown file
//
// One query may be in flight at a time; enter is ignored while waiting
// and esc cancels the request.
package chat

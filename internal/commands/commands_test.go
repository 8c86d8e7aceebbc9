package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"todo/internal/commands"
	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/storage"
	"todo/internal/tasks"
	"todo/internal/testutil"
)

// runCommand is a helper to run a command with FakeService.
func runCommand(t *testing.T, cmd commands.Command, svc *testutil.FakeService, args []string, quiet bool) (stdout, stderr string, code int) {
	t.Helper()

	var outBuf, errBuf bytes.Buffer

	cfg := &config.Config{
		Dir:   t.TempDir(),
		Quiet: quiet,
	}

	ctx := context.Background()
	if svc == nil {
		code = cmd.Run(ctx, cfg, nil, args, &outBuf, &errBuf)
	} else {
		code = cmd.Run(ctx, cfg, svc, args, &outBuf, &errBuf)
	}
	return outBuf.String(), errBuf.String(), code
}

var errDiskFull = &storage.PersistenceError{Path: "todo_list.json", Op: "write", Err: errors.New("no space left on device")}

// Tests for version command
func TestVersionCommand(t *testing.T) {
	cmd := &commands.VersionCmd{}

	stdout, stderr, code := runCommand(t, cmd, nil, nil, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	if stdout != "todo 0.1.0\n" {
		t.Errorf("expected version output, got %q", stdout)
	}
}

// Tests for add command
func TestAddCommand_Success(t *testing.T) {
	svc := testutil.NewFakeService()

	cmd := &commands.AddCmd{}
	stdout, stderr, code := runCommand(t, cmd, svc, []string{"Buy", "groceries"}, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	if stdout != "Task added: Buy groceries\n" {
		t.Errorf("expected confirmation, got %q", stdout)
	}

	list := svc.Tasks()
	if len(list) != 1 {
		t.Fatalf("expected 1 task, got %d", len(list))
	}
	if list[0].Description != "Buy groceries" || list[0].ID != 1 {
		t.Errorf("unexpected task %+v", list[0])
	}
}

func TestAddCommand_Quiet(t *testing.T) {
	svc := testutil.NewFakeService()

	cmd := &commands.AddCmd{}
	stdout, stderr, code := runCommand(t, cmd, svc, []string{"Buy", "milk"}, true)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	if stdout != "" {
		t.Errorf("expected empty stdout in quiet mode, got %q", stdout)
	}
	if len(svc.Tasks()) != 1 {
		t.Errorf("expected task to be added in quiet mode")
	}
}

func TestAddCommand_NoDescription(t *testing.T) {
	svc := testutil.NewFakeService()

	cmd := &commands.AddCmd{}
	stdout, stderr, code := runCommand(t, cmd, svc, nil, false)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stdout != "" {
		t.Errorf("expected no stdout, got %q", stdout)
	}
	if stderr != "error: description required\n" {
		t.Errorf("expected description required error, got %q", stderr)
	}
	if svc.NextID() != 1 {
		t.Errorf("expected no id to be issued, next id is %d", svc.NextID())
	}
}

func TestAddCommand_EmptyDescription(t *testing.T) {
	svc := testutil.NewFakeService()

	cmd := &commands.AddCmd{}
	stdout, stderr, code := runCommand(t, cmd, svc, []string{""}, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	if stdout != "Task added: \n" {
		t.Errorf("expected confirmation, got %q", stdout)
	}
	if len(svc.Tasks()) != 1 {
		t.Errorf("expected empty description to be accepted")
	}
}

func TestAddCommand_StorageError(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddTaskErr = errDiskFull

	cmd := &commands.AddCmd{}
	stdout, stderr, code := runCommand(t, cmd, svc, []string{"lost"}, false)

	if code != exitcode.StorageError {
		t.Errorf("expected exit code %d, got %d", exitcode.StorageError, code)
	}
	if stdout != "" {
		t.Errorf("expected no stdout, got %q", stdout)
	}
	expected := "error: storage error: write todo_list.json: no space left on device\n"
	if stderr != expected {
		t.Errorf("expected %q, got %q", expected, stderr)
	}
}

func TestAddCommand_IDsExhausted(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddTaskErr = tasks.ErrIDsExhausted

	cmd := &commands.AddCmd{}
	stdout, stderr, code := runCommand(t, cmd, svc, []string{"overflow"}, false)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stdout != "" {
		t.Errorf("expected no stdout, got %q", stdout)
	}
	if stderr != "error: task ids exhausted\n" {
		t.Errorf("expected ids exhausted error, got %q", stderr)
	}
}

// Tests for list command
func TestListCommand_WithTasks(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.Seed("Buy milk", "Walk dog")
	svc.CompleteTask(context.Background(), 1)

	cmd := &commands.ListCmd{}
	stdout, stderr, code := runCommand(t, cmd, svc, nil, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	testutil.GoldenString(t, "list_with_tasks", stdout)
}

func TestListCommand_GapsAfterDelete(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.Seed("A", "B", "C")
	svc.DeleteTask(context.Background(), 2)

	cmd := &commands.ListCmd{}
	stdout, _, code := runCommand(t, cmd, svc, nil, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	testutil.GoldenString(t, "list_gaps", stdout)
}

func TestListCommand_Empty(t *testing.T) {
	svc := testutil.NewFakeService()

	cmd := &commands.ListCmd{}
	stdout, stderr, code := runCommand(t, cmd, svc, nil, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	// Not a terminal: no hint.
	if stdout != "" {
		t.Errorf("expected empty stdout, got %q", stdout)
	}
}

func TestListCommand_QuietStillLists(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.Seed("Walk dog")

	cmd := &commands.ListCmd{}
	stdout, _, code := runCommand(t, cmd, svc, nil, true)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stdout != "1. [ ] Walk dog\n" {
		t.Errorf("expected list output in quiet mode, got %q", stdout)
	}
}

func TestListCommand_UnexpectedArgument(t *testing.T) {
	svc := testutil.NewFakeService()

	cmd := &commands.ListCmd{}
	stdout, stderr, code := runCommand(t, cmd, svc, []string{"extra"}, false)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stdout != "" {
		t.Errorf("expected no stdout, got %q", stdout)
	}
	if stderr != "error: unexpected argument: extra\n" {
		t.Errorf("unexpected stderr %q", stderr)
	}
}

func TestListCommand_StorageError(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.Seed("hidden")
	svc.ListTasksErr = errDiskFull

	cmd := &commands.ListCmd{}
	stdout, _, code := runCommand(t, cmd, svc, nil, false)

	if code != exitcode.StorageError {
		t.Errorf("expected exit code %d, got %d", exitcode.StorageError, code)
	}
	if stdout != "" {
		t.Errorf("expected no stdout, got %q", stdout)
	}
}

// Tests for complete command
func TestCompleteCommand_Success(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.Seed("Buy milk", "Walk dog")

	cmd := &commands.CompleteCmd{}
	stdout, stderr, code := runCommand(t, cmd, svc, []string{"2"}, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	if stdout != "Task 2 marked as completed\n" {
		t.Errorf("expected confirmation, got %q", stdout)
	}

	list := svc.Tasks()
	if list[0].Completed {
		t.Error("expected task 1 to stay open")
	}
	if !list[1].Completed {
		t.Error("expected task 2 to be completed")
	}
}

func TestCompleteCommand_Twice(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.Seed("Buy milk")

	cmd := &commands.CompleteCmd{}
	for i := 0; i < 2; i++ {
		_, stderr, code := runCommand(t, cmd, svc, []string{"1"}, false)
		if code != exitcode.Success {
			t.Errorf("run %d: expected exit code %d, got %d (%s)", i+1, exitcode.Success, code, stderr)
		}
	}
	if !svc.Tasks()[0].Completed {
		t.Error("expected task to be completed")
	}
}

func TestCompleteCommand_NotFound(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.Seed("one", "two")

	cmd := &commands.CompleteCmd{}
	stdout, stderr, code := runCommand(t, cmd, svc, []string{"99"}, false)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stdout != "" {
		t.Errorf("expected no stdout, got %q", stdout)
	}
	if stderr != "error: Task with id 99 not found\n" {
		t.Errorf("expected not found error, got %q", stderr)
	}
	for _, task := range svc.Tasks() {
		if task.Completed {
			t.Errorf("expected task %d to stay open", task.ID)
		}
	}
}

func TestCompleteCommand_NoID(t *testing.T) {
	svc := testutil.NewFakeService()

	cmd := &commands.CompleteCmd{}
	stdout, stderr, code := runCommand(t, cmd, svc, nil, false)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stdout != "" {
		t.Errorf("expected no stdout, got %q", stdout)
	}
	if stderr != "error: task id required\n" {
		t.Errorf("expected task id required error, got %q", stderr)
	}
}

func TestCompleteCommand_InvalidID(t *testing.T) {
	svc := testutil.NewFakeService()

	cmd := &commands.CompleteCmd{}
	stdout, stderr, code := runCommand(t, cmd, svc, []string{"abc"}, false)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stdout != "" {
		t.Errorf("expected no stdout, got %q", stdout)
	}
	if stderr != "error: invalid task id: abc\n" {
		t.Errorf("expected invalid task id error, got %q", stderr)
	}
}

func TestCompleteCommand_StorageErrorWins(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.CompleteTaskErr = errDiskFull

	cmd := &commands.CompleteCmd{}
	_, stderr, code := runCommand(t, cmd, svc, []string{"99"}, false)

	if code != exitcode.StorageError {
		t.Errorf("expected exit code %d, got %d", exitcode.StorageError, code)
	}
	if !bytes.HasPrefix([]byte(stderr), []byte("error: storage error:")) {
		t.Errorf("expected storage error, got %q", stderr)
	}
}

// Tests for delete command
func TestDeleteCommand_Success(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.Seed("Buy milk", "Walk dog")

	cmd := &commands.DeleteCmd{}
	stdout, stderr, code := runCommand(t, cmd, svc, []string{"1"}, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	if stdout != "Task 1 deleted\n" {
		t.Errorf("expected confirmation, got %q", stdout)
	}

	list := svc.Tasks()
	if len(list) != 1 {
		t.Fatalf("expected 1 task remaining, got %d", len(list))
	}
	if list[0] != (tasks.Task{ID: 2, Description: "Walk dog"}) {
		t.Errorf("unexpected remaining task %+v", list[0])
	}
	if svc.NextID() != 3 {
		t.Errorf("expected next id to stay 3, got %d", svc.NextID())
	}
}

func TestDeleteCommand_Quiet(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.Seed("Buy milk")

	cmd := &commands.DeleteCmd{}
	stdout, stderr, code := runCommand(t, cmd, svc, []string{"1"}, true)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stdout != "" || stderr != "" {
		t.Errorf("expected no output, got stdout %q stderr %q", stdout, stderr)
	}
}

func TestDeleteCommand_NotFound(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.Seed("one", "two")

	cmd := &commands.DeleteCmd{}
	stdout, stderr, code := runCommand(t, cmd, svc, []string{"99"}, true)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stdout != "" {
		t.Errorf("expected no stdout, got %q", stdout)
	}
	// Errors are reported even in quiet mode.
	if stderr != "error: Task with id 99 not found\n" {
		t.Errorf("expected not found error, got %q", stderr)
	}
	if len(svc.Tasks()) != 2 || svc.NextID() != 3 {
		t.Errorf("expected store unchanged, got %d tasks next id %d", len(svc.Tasks()), svc.NextID())
	}
}

func TestDeleteCommand_ExtraArgument(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.Seed("one", "two")

	cmd := &commands.DeleteCmd{}
	_, stderr, code := runCommand(t, cmd, svc, []string{"1", "2"}, false)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stderr != "error: unexpected argument: 2\n" {
		t.Errorf("unexpected stderr %q", stderr)
	}
	if len(svc.Tasks()) != 2 {
		t.Error("expected nothing to be deleted")
	}
}

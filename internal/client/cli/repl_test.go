package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"
)

type fakeExec struct {
	loggedIn bool

	calls []string
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Register(ctx context.Context) error {
	f.calls = append(f.calls, "register")
	return nil
}
func (f *fakeExec) Login(ctx context.Context) error {
	f.calls = append(f.calls, "login")
	f.loggedIn = true
	return nil
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.calls = append(f.calls, "logout")
	f.loggedIn = false
	return nil
}
func (f *fakeExec) Profile(ctx context.Context) error {
	f.calls = append(f.calls, "profile")
	return nil
}
func (f *fakeExec) UpdateProfile(ctx context.Context) error {
	f.calls = append(f.calls, "update")
	return nil
}
func (f *fakeExec) Browse(ctx context.Context, query string) error {
	f.calls = append(f.calls, "browse:"+query)
	return nil
}
func (f *fakeExec) Categories(ctx context.Context) error {
	f.calls = append(f.calls, "categories")
	return nil
}
func (f *fakeExec) ShowCart(ctx context.Context) error {
	f.calls = append(f.calls, "cart")
	return nil
}
func (f *fakeExec) AddToCart(ctx context.Context, idArg string) error {
	f.calls = append(f.calls, "add:"+idArg)
	return nil
}
func (f *fakeExec) RemoveFromCart(ctx context.Context, idArg string) error {
	f.calls = append(f.calls, "remove:"+idArg)
	return nil
}
func (f *fakeExec) SetQuantity(ctx context.Context, idArg, quantityArg string) error {
	f.calls = append(f.calls, "qty:"+idArg+":"+quantityArg)
	return nil
}
func (f *fakeExec) ClearCart(ctx context.Context) error {
	f.calls = append(f.calls, "clearcart")
	return nil
}
func (f *fakeExec) Checkout(ctx context.Context) error {
	f.calls = append(f.calls, "checkout")
	return nil
}
func (f *fakeExec) Orders(ctx context.Context) error {
	f.calls = append(f.calls, "orders")
	return nil
}

func TestRunREPL_LoginFlowAndCommands(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader(strings.Join([]string{
		"help",
		"login",
		"help",
		"browse aspirin for headache",
		"add 5",
		"cart",
		"qty 5 3",
		"checkout",
		"orders",
		"foobar",
		"exit",
	}, "\n"))

	exec := &fakeExec{loggedIn: false}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "status" }, sc)

	wantOrder := []string{"login", "browse:aspirin for headache", "add:5", "cart", "qty:5:3", "checkout", "orders"}
	if len(exec.calls) < len(wantOrder) {
		t.Fatalf("few calls: %+v", exec.calls)
	}
	idx := 0
	for _, c := range exec.calls {
		if idx < len(wantOrder) && c == wantOrder[idx] {
			idx++
		}
	}
	if idx != len(wantOrder) {
		t.Fatalf("commands order mismatch: got %v, want subseq %v", exec.calls, wantOrder)
	}
}

func TestRunREPL_UsageAndQuit(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader("add\nremove\nqty 5\nquit\n")
	exec := &fakeExec{loggedIn: true}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "s" }, sc)

	if len(exec.calls) != 0 {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
}

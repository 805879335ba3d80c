package identity

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/structpb"
)

func TestVerifier_RoundTrip(t *testing.T) {
	v := NewVerifier("secret", "idp")
	tok, err := v.Issue(Principal{AccountID: "acc-1", Role: RoleRider}, time.Minute)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	p, err := v.Verify(tok)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if p.AccountID != "acc-1" || p.Role != RoleRider {
		t.Fatalf("unexpected principal %+v", p)
	}
}

func TestVerifier_Rejects(t *testing.T) {
	v := NewVerifier("secret", "idp")
	other := NewVerifier("other-secret", "idp")
	wrongIssuer := NewVerifier("secret", "someone-else")

	badSig, _ := other.Issue(Principal{AccountID: "a", Role: RoleAdmin}, time.Minute)
	expired, _ := v.Issue(Principal{AccountID: "a", Role: RoleAdmin}, -time.Minute)
	issuer, _ := wrongIssuer.Issue(Principal{AccountID: "a", Role: RoleAdmin}, time.Minute)
	noRole, _ := v.Issue(Principal{AccountID: "a", Role: "root"}, time.Minute)
	noSub, _ := v.Issue(Principal{Role: RoleCustomer}, time.Minute)

	for name, tok := range map[string]string{
		"garbage":      "not-a-jwt",
		"bad sig":      badSig,
		"expired":      expired,
		"wrong issuer": issuer,
		"bad role":     noRole,
		"no subject":   noSub,
	} {
		if _, err := v.Verify(tok); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("%s: err=%v, want ErrInvalidToken", name, err)
		}
	}
}

type fakeAccounts struct {
	known map[string]string // id -> role
}

func (f *fakeAccounts) ValidateAccount(_ context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	id := in.GetFields()["id"].GetStringValue()
	if id == "" {
		return nil, status.Error(codes.InvalidArgument, "id is required")
	}
	role, ok := f.known[id]
	if !ok {
		return nil, status.Error(codes.NotFound, "account not found")
	}
	return structpb.NewStruct(map[string]interface{}{
		"ok": true, "id": id, "role": role, "name": "Ana", "email": "ana@example.com", "phone": "+1555",
	})
}

func newBufClient(t *testing.T, srv AccountServer) *Client {
	t.Helper()
	lis := bufconn.Listen(1 << 20)
	gs := grpc.NewServer()
	RegisterAccountServer(gs, srv)
	go func() { _ = gs.Serve(lis) }()
	t.Cleanup(gs.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })
	return NewClientFromConn(conn)
}

func TestClient_ValidateAccount(t *testing.T) {
	c := newBufClient(t, &fakeAccounts{known: map[string]string{"acc-7": "rider"}})

	acc, err := c.ValidateAccount(context.Background(), "acc-7")
	if err != nil {
		t.Fatalf("ValidateAccount: %v", err)
	}
	if acc.ID != "acc-7" || acc.Role != RoleRider || acc.Email != "ana@example.com" {
		t.Fatalf("unexpected account %+v", acc)
	}

	if _, err := c.ValidateAccount(context.Background(), "nobody"); !errors.Is(err, ErrAccountNotFound) {
		t.Fatalf("err=%v, want ErrAccountNotFound", err)
	}
}

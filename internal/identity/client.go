package identity

import (
	"context"
	"errors"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

const (
	accountServiceName    = "identity.v1.AccountService"
	validateAccountMethod = "/" + accountServiceName + "/ValidateAccount"
)

var ErrAccountNotFound = errors.New("account not found")

// Account is the provider's view of a person.
type Account struct {
	ID    string
	Role  Role
	Name  string
	Email string
	Phone string
}

// Client calls the identity provider's AccountService. Messages are
// google.protobuf.Struct so no generated stubs are needed.
type Client struct {
	conn grpc.ClientConnInterface
}

func NewClient(addr string) (*Client, error) {
	// Non-blocking connection, RPCs wait for ready
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, err
	}
	return &Client{conn: conn}, nil
}

func NewClientFromConn(conn grpc.ClientConnInterface) *Client {
	return &Client{conn: conn}
}

func (c *Client) ValidateAccount(ctx context.Context, id string) (*Account, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	req, err := structpb.NewStruct(map[string]interface{}{"id": id})
	if err != nil {
		return nil, err
	}
	out := &structpb.Struct{}
	if err := c.conn.Invoke(ctx, validateAccountMethod, req, out, grpc.WaitForReady(true)); err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	f := out.GetFields()
	if !f["ok"].GetBoolValue() {
		return nil, ErrAccountNotFound
	}
	return &Account{
		ID:    f["id"].GetStringValue(),
		Role:  Role(f["role"].GetStringValue()),
		Name:  f["name"].GetStringValue(),
		Email: f["email"].GetStringValue(),
		Phone: f["phone"].GetStringValue(),
	}, nil
}

// AccountServer is the server side of the AccountService contract.
type AccountServer interface {
	ValidateAccount(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

func RegisterAccountServer(s grpc.ServiceRegistrar, srv AccountServer) {
	s.RegisterService(&accountServiceDesc, srv)
}

var accountServiceDesc = grpc.ServiceDesc{
	ServiceName: accountServiceName,
	HandlerType: (*AccountServer)(nil),
	Methods: []grpc.MethodDesc{{
		MethodName: "ValidateAccount",
		Handler: func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
			in := new(structpb.Struct)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return srv.(AccountServer).ValidateAccount(ctx, in)
			}
			info := &grpc.UnaryServerInfo{Server: srv, FullMethod: validateAccountMethod}
			handler := func(ctx context.Context, req interface{}) (interface{}, error) {
				return srv.(AccountServer).ValidateAccount(ctx, req.(*structpb.Struct))
			}
			return interceptor(ctx, in, info, handler)
		},
	}},
	Streams:  []grpc.StreamDesc{},
	Metadata: "identity/v1/account.proto",
}

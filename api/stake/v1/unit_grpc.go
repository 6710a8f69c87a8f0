package stakev1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	UnitService_Mint_FullMethodName      = "/stake.v1.UnitService/Mint"
	UnitService_Approve_FullMethodName   = "/stake.v1.UnitService/Approve"
	UnitService_BalanceOf_FullMethodName = "/stake.v1.UnitService/BalanceOf"
)

// UnitServiceServer is the server API for stake.v1.UnitService.
type UnitServiceServer interface {
	Mint(context.Context, *MintRequest) (*MintResponse, error)
	Approve(context.Context, *ApproveRequest) (*ApproveResponse, error)
	BalanceOf(context.Context, *BalanceOfRequest) (*BalanceOfResponse, error)
}

// UnimplementedUnitServiceServer can be embedded to have forward compatible implementations.
type UnimplementedUnitServiceServer struct{}

func (UnimplementedUnitServiceServer) Mint(context.Context, *MintRequest) (*MintResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Mint not implemented")
}

func (UnimplementedUnitServiceServer) Approve(context.Context, *ApproveRequest) (*ApproveResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Approve not implemented")
}

func (UnimplementedUnitServiceServer) BalanceOf(context.Context, *BalanceOfRequest) (*BalanceOfResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method BalanceOf not implemented")
}

// RegisterUnitServiceServer registers the service on a gRPC server.
func RegisterUnitServiceServer(s grpc.ServiceRegistrar, srv UnitServiceServer) {
	s.RegisterService(&UnitService_ServiceDesc, srv)
}

// UnitServiceClient is the client API for stake.v1.UnitService.
type UnitServiceClient interface {
	Mint(ctx context.Context, in *MintRequest, opts ...grpc.CallOption) (*MintResponse, error)
	Approve(ctx context.Context, in *ApproveRequest, opts ...grpc.CallOption) (*ApproveResponse, error)
	BalanceOf(ctx context.Context, in *BalanceOfRequest, opts ...grpc.CallOption) (*BalanceOfResponse, error)
}

type unitServiceClient struct{ cc grpc.ClientConnInterface }

// NewUnitServiceClient returns a client for the stake.v1 protobuf wire format.
func NewUnitServiceClient(cc grpc.ClientConnInterface) UnitServiceClient { return &unitServiceClient{cc: cc} }

func (c *unitServiceClient) Mint(ctx context.Context, in *MintRequest, opts ...grpc.CallOption) (*MintResponse, error) {
	return invoke[MintResponse](ctx, c.cc, UnitService_Mint_FullMethodName, in, opts)
}

func (c *unitServiceClient) Approve(ctx context.Context, in *ApproveRequest, opts ...grpc.CallOption) (*ApproveResponse, error) {
	return invoke[ApproveResponse](ctx, c.cc, UnitService_Approve_FullMethodName, in, opts)
}

func (c *unitServiceClient) BalanceOf(ctx context.Context, in *BalanceOfRequest, opts ...grpc.CallOption) (*BalanceOfResponse, error) {
	return invoke[BalanceOfResponse](ctx, c.cc, UnitService_BalanceOf_FullMethodName, in, opts)
}

// UnitService_ServiceDesc is the grpc.ServiceDesc for stake.v1.UnitService.
var UnitService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "stake.v1.UnitService",
	HandlerType: (*UnitServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Mint", Handler: unaryHandler(UnitService_Mint_FullMethodName, UnitServiceServer.Mint)},
		{MethodName: "Approve", Handler: unaryHandler(UnitService_Approve_FullMethodName, UnitServiceServer.Approve)},
		{MethodName: "BalanceOf", Handler: unaryHandler(UnitService_BalanceOf_FullMethodName, UnitServiceServer.BalanceOf)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: FileName,
}

package stakev1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	StakeLedgerService_SetAdmin2_FullMethodName            = "/stake.v1.StakeLedgerService/SetAdmin2"
	StakeLedgerService_ChangeParent_FullMethodName         = "/stake.v1.StakeLedgerService/ChangeParent"
	StakeLedgerService_GetRoles_FullMethodName             = "/stake.v1.StakeLedgerService/GetRoles"
	StakeLedgerService_SetToken_FullMethodName             = "/stake.v1.StakeLedgerService/SetToken"
	StakeLedgerService_CurrentToken_FullMethodName         = "/stake.v1.StakeLedgerService/CurrentToken"
	StakeLedgerService_SetUcacAddr_FullMethodName          = "/stake.v1.StakeLedgerService/SetUcacAddr"
	StakeLedgerService_SetOwner1_FullMethodName            = "/stake.v1.StakeLedgerService/SetOwner1"
	StakeLedgerService_SetOwner2_FullMethodName            = "/stake.v1.StakeLedgerService/SetOwner2"
	StakeLedgerService_GetUcac_FullMethodName              = "/stake.v1.StakeLedgerService/GetUcac"
	StakeLedgerService_GetUcacAddr_FullMethodName          = "/stake.v1.StakeLedgerService/GetUcacAddr"
	StakeLedgerService_GetOwner1_FullMethodName            = "/stake.v1.StakeLedgerService/GetOwner1"
	StakeLedgerService_GetOwner2_FullMethodName            = "/stake.v1.StakeLedgerService/GetOwner2"
	StakeLedgerService_IsUcacOwner_FullMethodName          = "/stake.v1.StakeLedgerService/IsUcacOwner"
	StakeLedgerService_StakeTokens_FullMethodName          = "/stake.v1.StakeLedgerService/StakeTokens"
	StakeLedgerService_UnstakeTokens_FullMethodName        = "/stake.v1.StakeLedgerService/UnstakeTokens"
	StakeLedgerService_StakedTokens_FullMethodName         = "/stake.v1.StakeLedgerService/StakedTokens"
	StakeLedgerService_GetTotalStakedTokens_FullMethodName = "/stake.v1.StakeLedgerService/GetTotalStakedTokens"
	StakeLedgerService_ListStakes_FullMethodName           = "/stake.v1.StakeLedgerService/ListStakes"
	StakeLedgerService_ListJournal_FullMethodName          = "/stake.v1.StakeLedgerService/ListJournal"
)

// StakeLedgerServiceServer is the server API for stake.v1.StakeLedgerService.
type StakeLedgerServiceServer interface {
	SetAdmin2(context.Context, *SetAdmin2Request) (*SetAdmin2Response, error)
	ChangeParent(context.Context, *ChangeParentRequest) (*ChangeParentResponse, error)
	GetRoles(context.Context, *GetRolesRequest) (*GetRolesResponse, error)
	SetToken(context.Context, *SetTokenRequest) (*SetTokenResponse, error)
	CurrentToken(context.Context, *CurrentTokenRequest) (*CurrentTokenResponse, error)
	SetUcacAddr(context.Context, *SetUcacAddrRequest) (*SetUcacAddrResponse, error)
	SetOwner1(context.Context, *SetOwner1Request) (*SetOwner1Response, error)
	SetOwner2(context.Context, *SetOwner2Request) (*SetOwner2Response, error)
	GetUcac(context.Context, *GetUcacRequest) (*GetUcacResponse, error)
	GetUcacAddr(context.Context, *GetUcacAddrRequest) (*GetUcacAddrResponse, error)
	GetOwner1(context.Context, *GetOwner1Request) (*GetOwner1Response, error)
	GetOwner2(context.Context, *GetOwner2Request) (*GetOwner2Response, error)
	IsUcacOwner(context.Context, *IsUcacOwnerRequest) (*IsUcacOwnerResponse, error)
	StakeTokens(context.Context, *StakeTokensRequest) (*StakeTokensResponse, error)
	UnstakeTokens(context.Context, *UnstakeTokensRequest) (*UnstakeTokensResponse, error)
	StakedTokens(context.Context, *StakedTokensRequest) (*StakedTokensResponse, error)
	GetTotalStakedTokens(context.Context, *GetTotalStakedTokensRequest) (*GetTotalStakedTokensResponse, error)
	ListStakes(context.Context, *ListStakesRequest) (*ListStakesResponse, error)
	ListJournal(context.Context, *ListJournalRequest) (*ListJournalResponse, error)
}

// UnimplementedStakeLedgerServiceServer can be embedded to have forward compatible implementations.
type UnimplementedStakeLedgerServiceServer struct{}

func (UnimplementedStakeLedgerServiceServer) SetAdmin2(context.Context, *SetAdmin2Request) (*SetAdmin2Response, error) {
	return nil, status.Error(codes.Unimplemented, "method SetAdmin2 not implemented")
}

func (UnimplementedStakeLedgerServiceServer) ChangeParent(context.Context, *ChangeParentRequest) (*ChangeParentResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ChangeParent not implemented")
}

func (UnimplementedStakeLedgerServiceServer) GetRoles(context.Context, *GetRolesRequest) (*GetRolesResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetRoles not implemented")
}

func (UnimplementedStakeLedgerServiceServer) SetToken(context.Context, *SetTokenRequest) (*SetTokenResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method SetToken not implemented")
}

func (UnimplementedStakeLedgerServiceServer) CurrentToken(context.Context, *CurrentTokenRequest) (*CurrentTokenResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CurrentToken not implemented")
}

func (UnimplementedStakeLedgerServiceServer) SetUcacAddr(context.Context, *SetUcacAddrRequest) (*SetUcacAddrResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method SetUcacAddr not implemented")
}

func (UnimplementedStakeLedgerServiceServer) SetOwner1(context.Context, *SetOwner1Request) (*SetOwner1Response, error) {
	return nil, status.Error(codes.Unimplemented, "method SetOwner1 not implemented")
}

func (UnimplementedStakeLedgerServiceServer) SetOwner2(context.Context, *SetOwner2Request) (*SetOwner2Response, error) {
	return nil, status.Error(codes.Unimplemented, "method SetOwner2 not implemented")
}

func (UnimplementedStakeLedgerServiceServer) GetUcac(context.Context, *GetUcacRequest) (*GetUcacResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetUcac not implemented")
}

func (UnimplementedStakeLedgerServiceServer) GetUcacAddr(context.Context, *GetUcacAddrRequest) (*GetUcacAddrResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetUcacAddr not implemented")
}

func (UnimplementedStakeLedgerServiceServer) GetOwner1(context.Context, *GetOwner1Request) (*GetOwner1Response, error) {
	return nil, status.Error(codes.Unimplemented, "method GetOwner1 not implemented")
}

func (UnimplementedStakeLedgerServiceServer) GetOwner2(context.Context, *GetOwner2Request) (*GetOwner2Response, error) {
	return nil, status.Error(codes.Unimplemented, "method GetOwner2 not implemented")
}

func (UnimplementedStakeLedgerServiceServer) IsUcacOwner(context.Context, *IsUcacOwnerRequest) (*IsUcacOwnerResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method IsUcacOwner not implemented")
}

func (UnimplementedStakeLedgerServiceServer) StakeTokens(context.Context, *StakeTokensRequest) (*StakeTokensResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method StakeTokens not implemented")
}

func (UnimplementedStakeLedgerServiceServer) UnstakeTokens(context.Context, *UnstakeTokensRequest) (*UnstakeTokensResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method UnstakeTokens not implemented")
}

func (UnimplementedStakeLedgerServiceServer) StakedTokens(context.Context, *StakedTokensRequest) (*StakedTokensResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method StakedTokens not implemented")
}

func (UnimplementedStakeLedgerServiceServer) GetTotalStakedTokens(context.Context, *GetTotalStakedTokensRequest) (*GetTotalStakedTokensResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetTotalStakedTokens not implemented")
}

func (UnimplementedStakeLedgerServiceServer) ListStakes(context.Context, *ListStakesRequest) (*ListStakesResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListStakes not implemented")
}

func (UnimplementedStakeLedgerServiceServer) ListJournal(context.Context, *ListJournalRequest) (*ListJournalResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListJournal not implemented")
}

// RegisterStakeLedgerServiceServer registers the service on a gRPC server.
func RegisterStakeLedgerServiceServer(s grpc.ServiceRegistrar, srv StakeLedgerServiceServer) {
	s.RegisterService(&StakeLedgerService_ServiceDesc, srv)
}

// StakeLedgerServiceClient is the client API for stake.v1.StakeLedgerService.
type StakeLedgerServiceClient interface {
	SetAdmin2(ctx context.Context, in *SetAdmin2Request, opts ...grpc.CallOption) (*SetAdmin2Response, error)
	ChangeParent(ctx context.Context, in *ChangeParentRequest, opts ...grpc.CallOption) (*ChangeParentResponse, error)
	GetRoles(ctx context.Context, in *GetRolesRequest, opts ...grpc.CallOption) (*GetRolesResponse, error)
	SetToken(ctx context.Context, in *SetTokenRequest, opts ...grpc.CallOption) (*SetTokenResponse, error)
	CurrentToken(ctx context.Context, in *CurrentTokenRequest, opts ...grpc.CallOption) (*CurrentTokenResponse, error)
	SetUcacAddr(ctx context.Context, in *SetUcacAddrRequest, opts ...grpc.CallOption) (*SetUcacAddrResponse, error)
	SetOwner1(ctx context.Context, in *SetOwner1Request, opts ...grpc.CallOption) (*SetOwner1Response, error)
	SetOwner2(ctx context.Context, in *SetOwner2Request, opts ...grpc.CallOption) (*SetOwner2Response, error)
	GetUcac(ctx context.Context, in *GetUcacRequest, opts ...grpc.CallOption) (*GetUcacResponse, error)
	GetUcacAddr(ctx context.Context, in *GetUcacAddrRequest, opts ...grpc.CallOption) (*GetUcacAddrResponse, error)
	GetOwner1(ctx context.Context, in *GetOwner1Request, opts ...grpc.CallOption) (*GetOwner1Response, error)
	GetOwner2(ctx context.Context, in *GetOwner2Request, opts ...grpc.CallOption) (*GetOwner2Response, error)
	IsUcacOwner(ctx context.Context, in *IsUcacOwnerRequest, opts ...grpc.CallOption) (*IsUcacOwnerResponse, error)
	StakeTokens(ctx context.Context, in *StakeTokensRequest, opts ...grpc.CallOption) (*StakeTokensResponse, error)
	UnstakeTokens(ctx context.Context, in *UnstakeTokensRequest, opts ...grpc.CallOption) (*UnstakeTokensResponse, error)
	StakedTokens(ctx context.Context, in *StakedTokensRequest, opts ...grpc.CallOption) (*StakedTokensResponse, error)
	GetTotalStakedTokens(ctx context.Context, in *GetTotalStakedTokensRequest, opts ...grpc.CallOption) (*GetTotalStakedTokensResponse, error)
	ListStakes(ctx context.Context, in *ListStakesRequest, opts ...grpc.CallOption) (*ListStakesResponse, error)
	ListJournal(ctx context.Context, in *ListJournalRequest, opts ...grpc.CallOption) (*ListJournalResponse, error)
}

type stakeLedgerServiceClient struct{ cc grpc.ClientConnInterface }

// NewStakeLedgerServiceClient returns a client for the stake.v1 protobuf wire format.
func NewStakeLedgerServiceClient(cc grpc.ClientConnInterface) StakeLedgerServiceClient { return &stakeLedgerServiceClient{cc: cc} }

func (c *stakeLedgerServiceClient) SetAdmin2(ctx context.Context, in *SetAdmin2Request, opts ...grpc.CallOption) (*SetAdmin2Response, error) {
	return invoke[SetAdmin2Response](ctx, c.cc, StakeLedgerService_SetAdmin2_FullMethodName, in, opts)
}

func (c *stakeLedgerServiceClient) ChangeParent(ctx context.Context, in *ChangeParentRequest, opts ...grpc.CallOption) (*ChangeParentResponse, error) {
	return invoke[ChangeParentResponse](ctx, c.cc, StakeLedgerService_ChangeParent_FullMethodName, in, opts)
}

func (c *stakeLedgerServiceClient) GetRoles(ctx context.Context, in *GetRolesRequest, opts ...grpc.CallOption) (*GetRolesResponse, error) {
	return invoke[GetRolesResponse](ctx, c.cc, StakeLedgerService_GetRoles_FullMethodName, in, opts)
}

func (c *stakeLedgerServiceClient) SetToken(ctx context.Context, in *SetTokenRequest, opts ...grpc.CallOption) (*SetTokenResponse, error) {
	return invoke[SetTokenResponse](ctx, c.cc, StakeLedgerService_SetToken_FullMethodName, in, opts)
}

func (c *stakeLedgerServiceClient) CurrentToken(ctx context.Context, in *CurrentTokenRequest, opts ...grpc.CallOption) (*CurrentTokenResponse, error) {
	return invoke[CurrentTokenResponse](ctx, c.cc, StakeLedgerService_CurrentToken_FullMethodName, in, opts)
}

func (c *stakeLedgerServiceClient) SetUcacAddr(ctx context.Context, in *SetUcacAddrRequest, opts ...grpc.CallOption) (*SetUcacAddrResponse, error) {
	return invoke[SetUcacAddrResponse](ctx, c.cc, StakeLedgerService_SetUcacAddr_FullMethodName, in, opts)
}

func (c *stakeLedgerServiceClient) SetOwner1(ctx context.Context, in *SetOwner1Request, opts ...grpc.CallOption) (*SetOwner1Response, error) {
	return invoke[SetOwner1Response](ctx, c.cc, StakeLedgerService_SetOwner1_FullMethodName, in, opts)
}

func (c *stakeLedgerServiceClient) SetOwner2(ctx context.Context, in *SetOwner2Request, opts ...grpc.CallOption) (*SetOwner2Response, error) {
	return invoke[SetOwner2Response](ctx, c.cc, StakeLedgerService_SetOwner2_FullMethodName, in, opts)
}

func (c *stakeLedgerServiceClient) GetUcac(ctx context.Context, in *GetUcacRequest, opts ...grpc.CallOption) (*GetUcacResponse, error) {
	return invoke[GetUcacResponse](ctx, c.cc, StakeLedgerService_GetUcac_FullMethodName, in, opts)
}

func (c *stakeLedgerServiceClient) GetUcacAddr(ctx context.Context, in *GetUcacAddrRequest, opts ...grpc.CallOption) (*GetUcacAddrResponse, error) {
	return invoke[GetUcacAddrResponse](ctx, c.cc, StakeLedgerService_GetUcacAddr_FullMethodName, in, opts)
}

func (c *stakeLedgerServiceClient) GetOwner1(ctx context.Context, in *GetOwner1Request, opts ...grpc.CallOption) (*GetOwner1Response, error) {
	return invoke[GetOwner1Response](ctx, c.cc, StakeLedgerService_GetOwner1_FullMethodName, in, opts)
}

func (c *stakeLedgerServiceClient) GetOwner2(ctx context.Context, in *GetOwner2Request, opts ...grpc.CallOption) (*GetOwner2Response, error) {
	return invoke[GetOwner2Response](ctx, c.cc, StakeLedgerService_GetOwner2_FullMethodName, in, opts)
}

func (c *stakeLedgerServiceClient) IsUcacOwner(ctx context.Context, in *IsUcacOwnerRequest, opts ...grpc.CallOption) (*IsUcacOwnerResponse, error) {
	return invoke[IsUcacOwnerResponse](ctx, c.cc, StakeLedgerService_IsUcacOwner_FullMethodName, in, opts)
}

func (c *stakeLedgerServiceClient) StakeTokens(ctx context.Context, in *StakeTokensRequest, opts ...grpc.CallOption) (*StakeTokensResponse, error) {
	return invoke[StakeTokensResponse](ctx, c.cc, StakeLedgerService_StakeTokens_FullMethodName, in, opts)
}

func (c *stakeLedgerServiceClient) UnstakeTokens(ctx context.Context, in *UnstakeTokensRequest, opts ...grpc.CallOption) (*UnstakeTokensResponse, error) {
	return invoke[UnstakeTokensResponse](ctx, c.cc, StakeLedgerService_UnstakeTokens_FullMethodName, in, opts)
}

func (c *stakeLedgerServiceClient) StakedTokens(ctx context.Context, in *StakedTokensRequest, opts ...grpc.CallOption) (*StakedTokensResponse, error) {
	return invoke[StakedTokensResponse](ctx, c.cc, StakeLedgerService_StakedTokens_FullMethodName, in, opts)
}

func (c *stakeLedgerServiceClient) GetTotalStakedTokens(ctx context.Context, in *GetTotalStakedTokensRequest, opts ...grpc.CallOption) (*GetTotalStakedTokensResponse, error) {
	return invoke[GetTotalStakedTokensResponse](ctx, c.cc, StakeLedgerService_GetTotalStakedTokens_FullMethodName, in, opts)
}

func (c *stakeLedgerServiceClient) ListStakes(ctx context.Context, in *ListStakesRequest, opts ...grpc.CallOption) (*ListStakesResponse, error) {
	return invoke[ListStakesResponse](ctx, c.cc, StakeLedgerService_ListStakes_FullMethodName, in, opts)
}

func (c *stakeLedgerServiceClient) ListJournal(ctx context.Context, in *ListJournalRequest, opts ...grpc.CallOption) (*ListJournalResponse, error) {
	return invoke[ListJournalResponse](ctx, c.cc, StakeLedgerService_ListJournal_FullMethodName, in, opts)
}

// StakeLedgerService_ServiceDesc is the grpc.ServiceDesc for stake.v1.StakeLedgerService.
var StakeLedgerService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "stake.v1.StakeLedgerService",
	HandlerType: (*StakeLedgerServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "SetAdmin2", Handler: unaryHandler(StakeLedgerService_SetAdmin2_FullMethodName, StakeLedgerServiceServer.SetAdmin2)},
		{MethodName: "ChangeParent", Handler: unaryHandler(StakeLedgerService_ChangeParent_FullMethodName, StakeLedgerServiceServer.ChangeParent)},
		{MethodName: "GetRoles", Handler: unaryHandler(StakeLedgerService_GetRoles_FullMethodName, StakeLedgerServiceServer.GetRoles)},
		{MethodName: "SetToken", Handler: unaryHandler(StakeLedgerService_SetToken_FullMethodName, StakeLedgerServiceServer.SetToken)},
		{MethodName: "CurrentToken", Handler: unaryHandler(StakeLedgerService_CurrentToken_FullMethodName, StakeLedgerServiceServer.CurrentToken)},
		{MethodName: "SetUcacAddr", Handler: unaryHandler(StakeLedgerService_SetUcacAddr_FullMethodName, StakeLedgerServiceServer.SetUcacAddr)},
		{MethodName: "SetOwner1", Handler: unaryHandler(StakeLedgerService_SetOwner1_FullMethodName, StakeLedgerServiceServer.SetOwner1)},
		{MethodName: "SetOwner2", Handler: unaryHandler(StakeLedgerService_SetOwner2_FullMethodName, StakeLedgerServiceServer.SetOwner2)},
		{MethodName: "GetUcac", Handler: unaryHandler(StakeLedgerService_GetUcac_FullMethodName, StakeLedgerServiceServer.GetUcac)},
		{MethodName: "GetUcacAddr", Handler: unaryHandler(StakeLedgerService_GetUcacAddr_FullMethodName, StakeLedgerServiceServer.GetUcacAddr)},
		{MethodName: "GetOwner1", Handler: unaryHandler(StakeLedgerService_GetOwner1_FullMethodName, StakeLedgerServiceServer.GetOwner1)},
		{MethodName: "GetOwner2", Handler: unaryHandler(StakeLedgerService_GetOwner2_FullMethodName, StakeLedgerServiceServer.GetOwner2)},
		{MethodName: "IsUcacOwner", Handler: unaryHandler(StakeLedgerService_IsUcacOwner_FullMethodName, StakeLedgerServiceServer.IsUcacOwner)},
		{MethodName: "StakeTokens", Handler: unaryHandler(StakeLedgerService_StakeTokens_FullMethodName, StakeLedgerServiceServer.StakeTokens)},
		{MethodName: "UnstakeTokens", Handler: unaryHandler(StakeLedgerService_UnstakeTokens_FullMethodName, StakeLedgerServiceServer.UnstakeTokens)},
		{MethodName: "StakedTokens", Handler: unaryHandler(StakeLedgerService_StakedTokens_FullMethodName, StakeLedgerServiceServer.StakedTokens)},
		{MethodName: "GetTotalStakedTokens", Handler: unaryHandler(StakeLedgerService_GetTotalStakedTokens_FullMethodName, StakeLedgerServiceServer.GetTotalStakedTokens)},
		{MethodName: "ListStakes", Handler: unaryHandler(StakeLedgerService_ListStakes_FullMethodName, StakeLedgerServiceServer.ListStakes)},
		{MethodName: "ListJournal", Handler: unaryHandler(StakeLedgerService_ListJournal_FullMethodName, StakeLedgerServiceServer.ListJournal)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: FileName,
}

package stakev1

import "google.golang.org/protobuf/types/known/timestamppb"

// Roles reports the three access-control slots. Unset slots are empty.
type Roles struct {
	Admin1 string `protobuf:"bytes,1,opt,name=admin1,proto3" json:"admin1,omitempty"`
	Admin2 string `protobuf:"bytes,2,opt,name=admin2,proto3" json:"admin2,omitempty"`
	Parent string `protobuf:"bytes,3,opt,name=parent,proto3" json:"parent,omitempty"`
}

// Ucac is one registry record. Unset fields are empty.
type Ucac struct {
	UcacId  string `protobuf:"bytes,1,opt,name=ucac_id,proto3" json:"ucac_id,omitempty"`
	Address string `protobuf:"bytes,2,opt,name=address,proto3" json:"address,omitempty"`
	Owner1  string `protobuf:"bytes,3,opt,name=owner1,proto3" json:"owner1,omitempty"`
	Owner2  string `protobuf:"bytes,4,opt,name=owner2,proto3" json:"owner2,omitempty"`
}

// StakeEntry is one balance of the composite stake table.
type StakeEntry struct {
	UnitAddress string                 `protobuf:"bytes,1,opt,name=unit_address,proto3" json:"unit_address,omitempty"`
	Account     string                 `protobuf:"bytes,2,opt,name=account,proto3" json:"account,omitempty"`
	UcacId      string                 `protobuf:"bytes,3,opt,name=ucac_id,proto3" json:"ucac_id,omitempty"`
	Amount      string                 `protobuf:"bytes,4,opt,name=amount,proto3" json:"amount,omitempty"`
	UpdatedAt   *timestamppb.Timestamp `protobuf:"bytes,5,opt,name=updated_at,proto3" json:"updated_at,omitempty"`
}

// JournalEntry is one committed mutation.
type JournalEntry struct {
	Id          string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Seq         int64                  `protobuf:"varint,2,opt,name=seq,proto3" json:"seq,omitempty"`
	Kind        string                 `protobuf:"bytes,3,opt,name=kind,proto3" json:"kind,omitempty"`
	Actor       string                 `protobuf:"bytes,4,opt,name=actor,proto3" json:"actor,omitempty"`
	UnitAddress string                 `protobuf:"bytes,5,opt,name=unit_address,proto3" json:"unit_address,omitempty"`
	Account     string                 `protobuf:"bytes,6,opt,name=account,proto3" json:"account,omitempty"`
	UcacId      string                 `protobuf:"bytes,7,opt,name=ucac_id,proto3" json:"ucac_id,omitempty"`
	Amount      string                 `protobuf:"bytes,8,opt,name=amount,proto3" json:"amount,omitempty"`
	Detail      string                 `protobuf:"bytes,9,opt,name=detail,proto3" json:"detail,omitempty"`
	RecordedAt  *timestamppb.Timestamp `protobuf:"bytes,10,opt,name=recorded_at,proto3" json:"recorded_at,omitempty"`
}

func (x *StakeEntry) GetUpdatedAt() *timestamppb.Timestamp {
	if x == nil {
		return nil
	}
	return x.UpdatedAt
}

func (x *JournalEntry) GetRecordedAt() *timestamppb.Timestamp {
	if x == nil {
		return nil
	}
	return x.RecordedAt
}

type SetAdmin2Request struct {
	Identity string `protobuf:"bytes,1,opt,name=identity,proto3" json:"identity,omitempty"`
}

func (x *SetAdmin2Request) GetIdentity() string {
	if x == nil {
		return ""
	}
	return x.Identity
}

type SetAdmin2Response struct {
	Roles *Roles `protobuf:"bytes,1,opt,name=roles,proto3" json:"roles,omitempty"`
}

func (x *SetAdmin2Response) GetRoles() *Roles {
	if x == nil {
		return nil
	}
	return x.Roles
}

type ChangeParentRequest struct {
	Identity string `protobuf:"bytes,1,opt,name=identity,proto3" json:"identity,omitempty"`
}

func (x *ChangeParentRequest) GetIdentity() string {
	if x == nil {
		return ""
	}
	return x.Identity
}

type ChangeParentResponse struct {
	Roles *Roles `protobuf:"bytes,1,opt,name=roles,proto3" json:"roles,omitempty"`
}

func (x *ChangeParentResponse) GetRoles() *Roles {
	if x == nil {
		return nil
	}
	return x.Roles
}

type GetRolesRequest struct{}

type GetRolesResponse struct {
	Roles *Roles `protobuf:"bytes,1,opt,name=roles,proto3" json:"roles,omitempty"`
}

func (x *GetRolesResponse) GetRoles() *Roles {
	if x == nil {
		return nil
	}
	return x.Roles
}

type SetTokenRequest struct {
	Address string `protobuf:"bytes,1,opt,name=address,proto3" json:"address,omitempty"`
}

func (x *SetTokenRequest) GetAddress() string {
	if x == nil {
		return ""
	}
	return x.Address
}

type SetTokenResponse struct {
	Address string `protobuf:"bytes,1,opt,name=address,proto3" json:"address,omitempty"`
}

func (x *SetTokenResponse) GetAddress() string {
	if x == nil {
		return ""
	}
	return x.Address
}

type CurrentTokenRequest struct{}

type CurrentTokenResponse struct {
	Address string `protobuf:"bytes,1,opt,name=address,proto3" json:"address,omitempty"`
}

func (x *CurrentTokenResponse) GetAddress() string {
	if x == nil {
		return ""
	}
	return x.Address
}

type SetUcacAddrRequest struct {
	UcacId  string `protobuf:"bytes,1,opt,name=ucac_id,proto3" json:"ucac_id,omitempty"`
	Address string `protobuf:"bytes,2,opt,name=address,proto3" json:"address,omitempty"`
}

func (x *SetUcacAddrRequest) GetUcacId() string {
	if x == nil {
		return ""
	}
	return x.UcacId
}

func (x *SetUcacAddrRequest) GetAddress() string {
	if x == nil {
		return ""
	}
	return x.Address
}

type SetUcacAddrResponse struct {
	Ucac *Ucac `protobuf:"bytes,1,opt,name=ucac,proto3" json:"ucac,omitempty"`
}

func (x *SetUcacAddrResponse) GetUcac() *Ucac {
	if x == nil {
		return nil
	}
	return x.Ucac
}

type SetOwner1Request struct {
	UcacId   string `protobuf:"bytes,1,opt,name=ucac_id,proto3" json:"ucac_id,omitempty"`
	Identity string `protobuf:"bytes,2,opt,name=identity,proto3" json:"identity,omitempty"`
}

func (x *SetOwner1Request) GetUcacId() string {
	if x == nil {
		return ""
	}
	return x.UcacId
}

func (x *SetOwner1Request) GetIdentity() string {
	if x == nil {
		return ""
	}
	return x.Identity
}

type SetOwner1Response struct {
	Ucac *Ucac `protobuf:"bytes,1,opt,name=ucac,proto3" json:"ucac,omitempty"`
}

func (x *SetOwner1Response) GetUcac() *Ucac {
	if x == nil {
		return nil
	}
	return x.Ucac
}

type SetOwner2Request struct {
	UcacId   string `protobuf:"bytes,1,opt,name=ucac_id,proto3" json:"ucac_id,omitempty"`
	Identity string `protobuf:"bytes,2,opt,name=identity,proto3" json:"identity,omitempty"`
}

func (x *SetOwner2Request) GetUcacId() string {
	if x == nil {
		return ""
	}
	return x.UcacId
}

func (x *SetOwner2Request) GetIdentity() string {
	if x == nil {
		return ""
	}
	return x.Identity
}

type SetOwner2Response struct {
	Ucac *Ucac `protobuf:"bytes,1,opt,name=ucac,proto3" json:"ucac,omitempty"`
}

func (x *SetOwner2Response) GetUcac() *Ucac {
	if x == nil {
		return nil
	}
	return x.Ucac
}

type GetUcacRequest struct {
	UcacId string `protobuf:"bytes,1,opt,name=ucac_id,proto3" json:"ucac_id,omitempty"`
}

func (x *GetUcacRequest) GetUcacId() string {
	if x == nil {
		return ""
	}
	return x.UcacId
}

type GetUcacResponse struct {
	Ucac *Ucac `protobuf:"bytes,1,opt,name=ucac,proto3" json:"ucac,omitempty"`
}

func (x *GetUcacResponse) GetUcac() *Ucac {
	if x == nil {
		return nil
	}
	return x.Ucac
}

type GetUcacAddrRequest struct {
	UcacId string `protobuf:"bytes,1,opt,name=ucac_id,proto3" json:"ucac_id,omitempty"`
}

func (x *GetUcacAddrRequest) GetUcacId() string {
	if x == nil {
		return ""
	}
	return x.UcacId
}

type GetUcacAddrResponse struct {
	Address string `protobuf:"bytes,1,opt,name=address,proto3" json:"address,omitempty"`
}

func (x *GetUcacAddrResponse) GetAddress() string {
	if x == nil {
		return ""
	}
	return x.Address
}

type GetOwner1Request struct {
	UcacId string `protobuf:"bytes,1,opt,name=ucac_id,proto3" json:"ucac_id,omitempty"`
}

func (x *GetOwner1Request) GetUcacId() string {
	if x == nil {
		return ""
	}
	return x.UcacId
}

type GetOwner1Response struct {
	Identity string `protobuf:"bytes,1,opt,name=identity,proto3" json:"identity,omitempty"`
}

func (x *GetOwner1Response) GetIdentity() string {
	if x == nil {
		return ""
	}
	return x.Identity
}

type GetOwner2Request struct {
	UcacId string `protobuf:"bytes,1,opt,name=ucac_id,proto3" json:"ucac_id,omitempty"`
}

func (x *GetOwner2Request) GetUcacId() string {
	if x == nil {
		return ""
	}
	return x.UcacId
}

type GetOwner2Response struct {
	Identity string `protobuf:"bytes,1,opt,name=identity,proto3" json:"identity,omitempty"`
}

func (x *GetOwner2Response) GetIdentity() string {
	if x == nil {
		return ""
	}
	return x.Identity
}

type IsUcacOwnerRequest struct {
	UnitAddress string `protobuf:"bytes,1,opt,name=unit_address,proto3" json:"unit_address,omitempty"`
	UcacId      string `protobuf:"bytes,2,opt,name=ucac_id,proto3" json:"ucac_id,omitempty"`
	Identity    string `protobuf:"bytes,3,opt,name=identity,proto3" json:"identity,omitempty"`
}

func (x *IsUcacOwnerRequest) GetUnitAddress() string {
	if x == nil {
		return ""
	}
	return x.UnitAddress
}

func (x *IsUcacOwnerRequest) GetUcacId() string {
	if x == nil {
		return ""
	}
	return x.UcacId
}

func (x *IsUcacOwnerRequest) GetIdentity() string {
	if x == nil {
		return ""
	}
	return x.Identity
}

type IsUcacOwnerResponse struct {
	Owner bool `protobuf:"varint,1,opt,name=owner,proto3" json:"owner,omitempty"`
}

func (x *IsUcacOwnerResponse) GetOwner() bool {
	if x == nil {
		return false
	}
	return x.Owner
}

type StakeTokensRequest struct {
	UcacId  string `protobuf:"bytes,1,opt,name=ucac_id,proto3" json:"ucac_id,omitempty"`
	Account string `protobuf:"bytes,2,opt,name=account,proto3" json:"account,omitempty"`
	Amount  string `protobuf:"bytes,3,opt,name=amount,proto3" json:"amount,omitempty"`
}

func (x *StakeTokensRequest) GetUcacId() string {
	if x == nil {
		return ""
	}
	return x.UcacId
}

func (x *StakeTokensRequest) GetAccount() string {
	if x == nil {
		return ""
	}
	return x.Account
}

func (x *StakeTokensRequest) GetAmount() string {
	if x == nil {
		return ""
	}
	return x.Amount
}

type StakeTokensResponse struct {
	Entry *StakeEntry `protobuf:"bytes,1,opt,name=entry,proto3" json:"entry,omitempty"`
}

func (x *StakeTokensResponse) GetEntry() *StakeEntry {
	if x == nil {
		return nil
	}
	return x.Entry
}

type UnstakeTokensRequest struct {
	UnitAddress string `protobuf:"bytes,1,opt,name=unit_address,proto3" json:"unit_address,omitempty"`
	UcacId      string `protobuf:"bytes,2,opt,name=ucac_id,proto3" json:"ucac_id,omitempty"`
	Amount      string `protobuf:"bytes,3,opt,name=amount,proto3" json:"amount,omitempty"`
}

func (x *UnstakeTokensRequest) GetUnitAddress() string {
	if x == nil {
		return ""
	}
	return x.UnitAddress
}

func (x *UnstakeTokensRequest) GetUcacId() string {
	if x == nil {
		return ""
	}
	return x.UcacId
}

func (x *UnstakeTokensRequest) GetAmount() string {
	if x == nil {
		return ""
	}
	return x.Amount
}

type UnstakeTokensResponse struct {
	Entry *StakeEntry `protobuf:"bytes,1,opt,name=entry,proto3" json:"entry,omitempty"`
}

func (x *UnstakeTokensResponse) GetEntry() *StakeEntry {
	if x == nil {
		return nil
	}
	return x.Entry
}

type StakedTokensRequest struct {
	UnitAddress string `protobuf:"bytes,1,opt,name=unit_address,proto3" json:"unit_address,omitempty"`
	Account     string `protobuf:"bytes,2,opt,name=account,proto3" json:"account,omitempty"`
	UcacId      string `protobuf:"bytes,3,opt,name=ucac_id,proto3" json:"ucac_id,omitempty"`
}

func (x *StakedTokensRequest) GetUnitAddress() string {
	if x == nil {
		return ""
	}
	return x.UnitAddress
}

func (x *StakedTokensRequest) GetAccount() string {
	if x == nil {
		return ""
	}
	return x.Account
}

func (x *StakedTokensRequest) GetUcacId() string {
	if x == nil {
		return ""
	}
	return x.UcacId
}

type StakedTokensResponse struct {
	Amount string `protobuf:"bytes,1,opt,name=amount,proto3" json:"amount,omitempty"`
}

func (x *StakedTokensResponse) GetAmount() string {
	if x == nil {
		return ""
	}
	return x.Amount
}

type GetTotalStakedTokensRequest struct {
	UcacId string `protobuf:"bytes,1,opt,name=ucac_id,proto3" json:"ucac_id,omitempty"`
}

func (x *GetTotalStakedTokensRequest) GetUcacId() string {
	if x == nil {
		return ""
	}
	return x.UcacId
}

type GetTotalStakedTokensResponse struct {
	Amount string `protobuf:"bytes,1,opt,name=amount,proto3" json:"amount,omitempty"`
}

func (x *GetTotalStakedTokensResponse) GetAmount() string {
	if x == nil {
		return ""
	}
	return x.Amount
}

type ListStakesRequest struct {
	PageSize  int32  `protobuf:"varint,1,opt,name=page_size,proto3" json:"page_size,omitempty"`
	PageToken string `protobuf:"bytes,2,opt,name=page_token,proto3" json:"page_token,omitempty"`
	Filter    string `protobuf:"bytes,3,opt,name=filter,proto3" json:"filter,omitempty"`
}

func (x *ListStakesRequest) GetPageSize() int32 {
	if x == nil {
		return 0
	}
	return x.PageSize
}

func (x *ListStakesRequest) GetPageToken() string {
	if x == nil {
		return ""
	}
	return x.PageToken
}

func (x *ListStakesRequest) GetFilter() string {
	if x == nil {
		return ""
	}
	return x.Filter
}

type ListStakesResponse struct {
	Entries       []*StakeEntry `protobuf:"bytes,1,rep,name=entries,proto3" json:"entries,omitempty"`
	NextPageToken string        `protobuf:"bytes,2,opt,name=next_page_token,proto3" json:"next_page_token,omitempty"`
}

func (x *ListStakesResponse) GetEntries() []*StakeEntry {
	if x == nil {
		return nil
	}
	return x.Entries
}

func (x *ListStakesResponse) GetNextPageToken() string {
	if x == nil {
		return ""
	}
	return x.NextPageToken
}

type ListJournalRequest struct {
	PageSize  int32  `protobuf:"varint,1,opt,name=page_size,proto3" json:"page_size,omitempty"`
	PageToken string `protobuf:"bytes,2,opt,name=page_token,proto3" json:"page_token,omitempty"`
}

func (x *ListJournalRequest) GetPageSize() int32 {
	if x == nil {
		return 0
	}
	return x.PageSize
}

func (x *ListJournalRequest) GetPageToken() string {
	if x == nil {
		return ""
	}
	return x.PageToken
}

type ListJournalResponse struct {
	Entries       []*JournalEntry `protobuf:"bytes,1,rep,name=entries,proto3" json:"entries,omitempty"`
	NextPageToken string          `protobuf:"bytes,2,opt,name=next_page_token,proto3" json:"next_page_token,omitempty"`
}

func (x *ListJournalResponse) GetEntries() []*JournalEntry {
	if x == nil {
		return nil
	}
	return x.Entries
}

func (x *ListJournalResponse) GetNextPageToken() string {
	if x == nil {
		return ""
	}
	return x.NextPageToken
}

type MintRequest struct {
	UnitAddress string `protobuf:"bytes,1,opt,name=unit_address,proto3" json:"unit_address,omitempty"`
	Account     string `protobuf:"bytes,2,opt,name=account,proto3" json:"account,omitempty"`
	Amount      string `protobuf:"bytes,3,opt,name=amount,proto3" json:"amount,omitempty"`
}

func (x *MintRequest) GetUnitAddress() string {
	if x == nil {
		return ""
	}
	return x.UnitAddress
}

func (x *MintRequest) GetAccount() string {
	if x == nil {
		return ""
	}
	return x.Account
}

func (x *MintRequest) GetAmount() string {
	if x == nil {
		return ""
	}
	return x.Amount
}

type MintResponse struct {
	Balance string `protobuf:"bytes,1,opt,name=balance,proto3" json:"balance,omitempty"`
}

func (x *MintResponse) GetBalance() string {
	if x == nil {
		return ""
	}
	return x.Balance
}

type ApproveRequest struct {
	UnitAddress string `protobuf:"bytes,1,opt,name=unit_address,proto3" json:"unit_address,omitempty"`
	Spender     string `protobuf:"bytes,2,opt,name=spender,proto3" json:"spender,omitempty"`
	Amount      string `protobuf:"bytes,3,opt,name=amount,proto3" json:"amount,omitempty"`
}

func (x *ApproveRequest) GetUnitAddress() string {
	if x == nil {
		return ""
	}
	return x.UnitAddress
}

func (x *ApproveRequest) GetSpender() string {
	if x == nil {
		return ""
	}
	return x.Spender
}

func (x *ApproveRequest) GetAmount() string {
	if x == nil {
		return ""
	}
	return x.Amount
}

type ApproveResponse struct {
	Allowance string `protobuf:"bytes,1,opt,name=allowance,proto3" json:"allowance,omitempty"`
}

func (x *ApproveResponse) GetAllowance() string {
	if x == nil {
		return ""
	}
	return x.Allowance
}

type BalanceOfRequest struct {
	UnitAddress string `protobuf:"bytes,1,opt,name=unit_address,proto3" json:"unit_address,omitempty"`
	Account     string `protobuf:"bytes,2,opt,name=account,proto3" json:"account,omitempty"`
}

func (x *BalanceOfRequest) GetUnitAddress() string {
	if x == nil {
		return ""
	}
	return x.UnitAddress
}

func (x *BalanceOfRequest) GetAccount() string {
	if x == nil {
		return ""
	}
	return x.Account
}

type BalanceOfResponse struct {
	Balance string `protobuf:"bytes,1,opt,name=balance,proto3" json:"balance,omitempty"`
}

func (x *BalanceOfResponse) GetBalance() string {
	if x == nil {
		return ""
	}
	return x.Balance
}

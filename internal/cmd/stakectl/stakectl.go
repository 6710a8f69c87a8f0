// Package stakectl is a command-line client for the stake ledger gRPC API.
//
// Usage:
//
//	stakectl [flags] <command> [field=value ...]
//
// Fields are the request's proto field names, for example
//
//	stakectl -as parent stake-tokens ucac_id=id1 account=p1 amount=10
package stakectl

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"time"

	stakev1 "github.com/louisbranch/stakeledger/api/stake/v1"
	entrypoint "github.com/louisbranch/stakeledger/internal/platform/cmd"
	"github.com/louisbranch/stakeledger/internal/platform/discovery"
	platformgrpc "github.com/louisbranch/stakeledger/internal/platform/grpc"
	"github.com/louisbranch/stakeledger/internal/platform/timeouts"
	grpcmeta "github.com/louisbranch/stakeledger/internal/services/stake/api/grpc/metadata"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/dynamicpb"
)

// Config holds stakectl configuration.
type Config struct {
	Addr     string        `env:"STAKE_LEDGER_ADDR"`
	Token    string        `env:"STAKE_LEDGER_IDENTITY_TOKEN"`
	Identity string        `env:"STAKE_LEDGER_IDENTITY"`
	Locale   string        `env:"STAKE_LEDGER_LOCALE"`
	Timeout  time.Duration `env:"STAKE_LEDGER_REQUEST_TIMEOUT"`

	Command string
	Fields  map[string]string
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "stake ledger gRPC address")
	fs.StringVar(&cfg.Token, "token", cfg.Token, "bearer identity token")
	fs.StringVar(&cfg.Identity, "as", cfg.Identity, "caller identity header (development servers only)")
	fs.StringVar(&cfg.Locale, "locale", cfg.Locale, "locale for error messages")
	fs.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "per-request timeout")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	cfg.Addr = discovery.OrDefaultGRPCAddr(cfg.Addr, discovery.ServiceStake)
	if cfg.Timeout <= 0 {
		cfg.Timeout = timeouts.GRPCRequest
	}

	rest := fs.Args()
	if len(rest) == 0 {
		return Config{}, errors.New("command is required; run with -h for the list")
	}
	cfg.Command = rest[0]
	if _, ok := commands[cfg.Command]; !ok {
		return Config{}, fmt.Errorf("unknown command %q (known: %s)", cfg.Command, strings.Join(CommandNames(), ", "))
	}
	cfg.Fields = make(map[string]string, len(rest)-1)
	for _, arg := range rest[1:] {
		key, value, ok := strings.Cut(arg, "=")
		if !ok || strings.TrimSpace(key) == "" {
			return Config{}, fmt.Errorf("argument %q must be field=value", arg)
		}
		cfg.Fields[strings.TrimSpace(key)] = value
	}
	return cfg, nil
}

// Run dials the ledger, invokes the configured command, and writes the
// response as indented protobuf JSON to out.
func Run(ctx context.Context, cfg Config, out io.Writer) error {
	if out == nil {
		return errors.New("output is required")
	}
	method, ok := commands[cfg.Command]
	if !ok {
		return fmt.Errorf("unknown command %q", cfg.Command)
	}
	md, err := stakev1.MethodDescriptor(method)
	if err != nil {
		return err
	}
	req, err := buildRequest(md.Input(), cfg.Fields)
	if err != nil {
		return fmt.Errorf("decode request: %w", err)
	}

	conn, err := platformgrpc.DialWithHealth(ctx, nil, cfg.Addr, string(md.Parent().FullName()), timeouts.GRPCDial, nil,
		append(platformgrpc.DefaultClientDialOptions(), platformgrpc.WithBearerToken(cfg.Token))...)
	if err != nil {
		return fmt.Errorf("dial %s: %w", cfg.Addr, err)
	}
	defer conn.Close()

	callCtx, cancel := context.WithTimeout(outgoingContext(ctx, cfg), cfg.Timeout)
	defer cancel()
	resp := dynamicpb.NewMessage(md.Output())
	if err := conn.Invoke(callCtx, method, req, resp); err != nil {
		return describeError(err)
	}
	encoded, err := outputFormat.Marshal(resp)
	if err != nil {
		return fmt.Errorf("encode response: %w", err)
	}
	_, err = fmt.Fprintf(out, "%s\n", encoded)
	return err
}

var outputFormat = protojson.MarshalOptions{Multiline: true, Indent: "  ", UseProtoNames: true}

// CommandNames lists the supported commands in sorted order.
func CommandNames() []string {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func outgoingContext(ctx context.Context, cfg Config) context.Context {
	var pairs []string
	if identity := strings.TrimSpace(cfg.Identity); identity != "" {
		pairs = append(pairs, grpcmeta.IdentityHeader, identity)
	}
	if locale := strings.TrimSpace(cfg.Locale); locale != "" {
		pairs = append(pairs, grpcmeta.LocaleHeader, locale)
	}
	if len(pairs) == 0 {
		return ctx
	}
	return metadata.AppendToOutgoingContext(ctx, pairs...)
}

// buildRequest sets each field=value pair on a new request message.
// Fields use their proto names and must be scalars.
func buildRequest(desc protoreflect.MessageDescriptor, fields map[string]string) (*dynamicpb.Message, error) {
	msg := dynamicpb.NewMessage(desc)
	for key, raw := range fields {
		fd := desc.Fields().ByName(protoreflect.Name(key))
		if fd == nil {
			return nil, fmt.Errorf("unknown field %q for %s", key, desc.Name())
		}
		value, err := parseField(fd, raw)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", key, err)
		}
		msg.Set(fd, value)
	}
	return msg, nil
}

func parseField(fd protoreflect.FieldDescriptor, raw string) (protoreflect.Value, error) {
	if fd.IsList() || fd.IsMap() {
		return protoreflect.Value{}, errors.New("repeated fields cannot be set from arguments")
	}
	switch fd.Kind() {
	case protoreflect.StringKind:
		return protoreflect.ValueOfString(raw), nil
	case protoreflect.BoolKind:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return protoreflect.Value{}, err
		}
		return protoreflect.ValueOfBool(b), nil
	case protoreflect.Int32Kind:
		n, err := strconv.ParseInt(raw, 10, 32)
		if err != nil {
			return protoreflect.Value{}, fmt.Errorf("must be an integer: %w", err)
		}
		return protoreflect.ValueOfInt32(int32(n)), nil
	case protoreflect.Int64Kind:
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return protoreflect.Value{}, fmt.Errorf("must be an integer: %w", err)
		}
		return protoreflect.ValueOfInt64(n), nil
	default:
		return protoreflect.Value{}, fmt.Errorf("%s fields cannot be set from arguments", fd.Kind())
	}
}

// describeError prefers the server's localized message when present.
func describeError(err error) error {
	st, ok := status.FromError(err)
	if !ok {
		return err
	}
	for _, detail := range st.Details() {
		if localized, ok := detail.(*errdetails.LocalizedMessage); ok && localized.GetMessage() != "" {
			return fmt.Errorf("%s: %s", st.Code(), localized.GetMessage())
		}
	}
	return fmt.Errorf("%s: %s", st.Code(), st.Message())
}

// commands maps each command to the gRPC method it invokes.
var commands = map[string]string{
	"set-admin2":     stakev1.StakeLedgerService_SetAdmin2_FullMethodName,
	"change-parent":  stakev1.StakeLedgerService_ChangeParent_FullMethodName,
	"get-roles":      stakev1.StakeLedgerService_GetRoles_FullMethodName,
	"set-token":      stakev1.StakeLedgerService_SetToken_FullMethodName,
	"current-token":  stakev1.StakeLedgerService_CurrentToken_FullMethodName,
	"set-ucac-addr":  stakev1.StakeLedgerService_SetUcacAddr_FullMethodName,
	"set-owner1":     stakev1.StakeLedgerService_SetOwner1_FullMethodName,
	"set-owner2":     stakev1.StakeLedgerService_SetOwner2_FullMethodName,
	"get-ucac":       stakev1.StakeLedgerService_GetUcac_FullMethodName,
	"get-ucac-addr":  stakev1.StakeLedgerService_GetUcacAddr_FullMethodName,
	"get-owner1":     stakev1.StakeLedgerService_GetOwner1_FullMethodName,
	"get-owner2":     stakev1.StakeLedgerService_GetOwner2_FullMethodName,
	"is-ucac-owner":  stakev1.StakeLedgerService_IsUcacOwner_FullMethodName,
	"stake-tokens":   stakev1.StakeLedgerService_StakeTokens_FullMethodName,
	"unstake-tokens": stakev1.StakeLedgerService_UnstakeTokens_FullMethodName,
	"staked-tokens":  stakev1.StakeLedgerService_StakedTokens_FullMethodName,
	"total-staked":   stakev1.StakeLedgerService_GetTotalStakedTokens_FullMethodName,
	"list-stakes":    stakev1.StakeLedgerService_ListStakes_FullMethodName,
	"list-journal":   stakev1.StakeLedgerService_ListJournal_FullMethodName,
	"mint":           stakev1.UnitService_Mint_FullMethodName,
	"approve":        stakev1.UnitService_Approve_FullMethodName,
	"balance-of":     stakev1.UnitService_BalanceOf_FullMethodName,
}

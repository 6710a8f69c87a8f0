package stakev1

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protodesc"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/reflect/protoregistry"
	"google.golang.org/protobuf/types/descriptorpb"
	"google.golang.org/protobuf/types/dynamicpb"
	"google.golang.org/protobuf/types/known/timestamppb"
)

const (
	// FileName is the path of the proto file this package describes.
	FileName = "stake/v1/stake.proto"

	protoPackage = "stake.v1"
	goPackage    = "github.com/louisbranch/stakeledger/api/stake/v1;stakev1"
)

// messageTypes lists every message in declaration order.
var messageTypes = []any{
	(*Roles)(nil),
	(*Ucac)(nil),
	(*StakeEntry)(nil),
	(*JournalEntry)(nil),
	(*SetAdmin2Request)(nil),
	(*SetAdmin2Response)(nil),
	(*ChangeParentRequest)(nil),
	(*ChangeParentResponse)(nil),
	(*GetRolesRequest)(nil),
	(*GetRolesResponse)(nil),
	(*SetTokenRequest)(nil),
	(*SetTokenResponse)(nil),
	(*CurrentTokenRequest)(nil),
	(*CurrentTokenResponse)(nil),
	(*SetUcacAddrRequest)(nil),
	(*SetUcacAddrResponse)(nil),
	(*SetOwner1Request)(nil),
	(*SetOwner1Response)(nil),
	(*SetOwner2Request)(nil),
	(*SetOwner2Response)(nil),
	(*GetUcacRequest)(nil),
	(*GetUcacResponse)(nil),
	(*GetUcacAddrRequest)(nil),
	(*GetUcacAddrResponse)(nil),
	(*GetOwner1Request)(nil),
	(*GetOwner1Response)(nil),
	(*GetOwner2Request)(nil),
	(*GetOwner2Response)(nil),
	(*IsUcacOwnerRequest)(nil),
	(*IsUcacOwnerResponse)(nil),
	(*StakeTokensRequest)(nil),
	(*StakeTokensResponse)(nil),
	(*UnstakeTokensRequest)(nil),
	(*UnstakeTokensResponse)(nil),
	(*StakedTokensRequest)(nil),
	(*StakedTokensResponse)(nil),
	(*GetTotalStakedTokensRequest)(nil),
	(*GetTotalStakedTokensResponse)(nil),
	(*ListStakesRequest)(nil),
	(*ListStakesResponse)(nil),
	(*ListJournalRequest)(nil),
	(*ListJournalResponse)(nil),
	(*MintRequest)(nil),
	(*MintResponse)(nil),
	(*ApproveRequest)(nil),
	(*ApproveResponse)(nil),
	(*BalanceOfRequest)(nil),
	(*BalanceOfResponse)(nil),
}

var timestampType = reflect.TypeOf((*timestamppb.Timestamp)(nil))

type fieldPlan struct {
	index int
	fd    protoreflect.FieldDescriptor
}

type messagePlan struct {
	desc   protoreflect.MessageDescriptor
	fields []fieldPlan
}

var (
	stakeFile protoreflect.FileDescriptor
	plans     map[reflect.Type]*messagePlan
)

func init() {
	file, err := buildFile()
	if err != nil {
		panic(fmt.Sprintf("stakev1: build %s: %v", FileName, err))
	}
	built, err := buildPlans(file)
	if err != nil {
		panic(fmt.Sprintf("stakev1: map %s: %v", FileName, err))
	}
	stakeFile = file
	plans = built
}

// File returns the descriptor of stake/v1/stake.proto.
func File() protoreflect.FileDescriptor { return stakeFile }

// MethodDescriptor resolves a full gRPC method name such as
// "/stake.v1.StakeLedgerService/StakeTokens".
func MethodDescriptor(fullMethod string) (protoreflect.MethodDescriptor, error) {
	service, method, ok := strings.Cut(strings.TrimPrefix(fullMethod, "/"), "/")
	if !ok || method == "" {
		return nil, fmt.Errorf("malformed method name %q", fullMethod)
	}
	sd := stakeFile.Services().ByName(protoreflect.FullName(service).Name())
	if sd == nil || string(sd.FullName()) != service {
		return nil, fmt.Errorf("unknown service %q", service)
	}
	md := sd.Methods().ByName(protoreflect.Name(method))
	if md == nil {
		return nil, fmt.Errorf("unknown method %q", fullMethod)
	}
	return md, nil
}

func buildFile() (protoreflect.FileDescriptor, error) {
	fdp := &descriptorpb.FileDescriptorProto{
		Name:       proto.String(FileName),
		Package:    proto.String(protoPackage),
		Dependency: []string{timestamppb.File_google_protobuf_timestamp_proto.Path()},
		Syntax:     proto.String("proto3"),
		Options:    &descriptorpb.FileOptions{GoPackage: proto.String(goPackage)},
	}
	for _, m := range messageTypes {
		dp, err := describeMessage(reflect.TypeOf(m).Elem())
		if err != nil {
			return nil, err
		}
		fdp.MessageType = append(fdp.MessageType, dp)
	}
	for _, sd := range []*grpc.ServiceDesc{&StakeLedgerService_ServiceDesc, &UnitService_ServiceDesc} {
		fdp.Service = append(fdp.Service, describeService(sd))
	}
	return protodesc.NewFile(fdp, protoregistry.GlobalFiles)
}

func describeMessage(t reflect.Type) (*descriptorpb.DescriptorProto, error) {
	dp := &descriptorpb.DescriptorProto{Name: proto.String(t.Name())}
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		tag, ok, err := parseFieldTag(sf.Tag.Get("protobuf"))
		if err != nil {
			return nil, fmt.Errorf("%s.%s: %w", t.Name(), sf.Name, err)
		}
		if !ok {
			continue
		}
		field := &descriptorpb.FieldDescriptorProto{
			Name:   proto.String(tag.name),
			Number: proto.Int32(tag.number),
			Label:  descriptorpb.FieldDescriptorProto_LABEL_OPTIONAL.Enum(),
		}
		goType := sf.Type
		if tag.repeated {
			if goType.Kind() != reflect.Slice {
				return nil, fmt.Errorf("%s.%s: repeated field must be a slice", t.Name(), sf.Name)
			}
			field.Label = descriptorpb.FieldDescriptorProto_LABEL_REPEATED.Enum()
			goType = goType.Elem()
		}
		switch {
		case goType == timestampType:
			field.Type = descriptorpb.FieldDescriptorProto_TYPE_MESSAGE.Enum()
			field.TypeName = proto.String("." + string((&timestamppb.Timestamp{}).ProtoReflect().Descriptor().FullName()))
		case goType.Kind() == reflect.Pointer && goType.Elem().Kind() == reflect.Struct:
			field.Type = descriptorpb.FieldDescriptorProto_TYPE_MESSAGE.Enum()
			field.TypeName = proto.String("." + protoPackage + "." + goType.Elem().Name())
		case goType.Kind() == reflect.String:
			field.Type = descriptorpb.FieldDescriptorProto_TYPE_STRING.Enum()
		case goType.Kind() == reflect.Bool:
			field.Type = descriptorpb.FieldDescriptorProto_TYPE_BOOL.Enum()
		case goType.Kind() == reflect.Int32:
			field.Type = descriptorpb.FieldDescriptorProto_TYPE_INT32.Enum()
		case goType.Kind() == reflect.Int64:
			field.Type = descriptorpb.FieldDescriptorProto_TYPE_INT64.Enum()
		default:
			return nil, fmt.Errorf("%s.%s: unsupported type %s", t.Name(), sf.Name, sf.Type)
		}
		dp.Field = append(dp.Field, field)
	}
	return dp, nil
}

// describeService derives methods from the service descriptor. Each method
// takes <Method>Request and returns <Method>Response.
func describeService(sd *grpc.ServiceDesc) *descriptorpb.ServiceDescriptorProto {
	name := strings.TrimPrefix(sd.ServiceName, protoPackage+".")
	service := &descriptorpb.ServiceDescriptorProto{Name: proto.String(name)}
	for _, m := range sd.Methods {
		service.Method = append(service.Method, &descriptorpb.MethodDescriptorProto{
			Name:       proto.String(m.MethodName),
			InputType:  proto.String("." + protoPackage + "." + m.MethodName + "Request"),
			OutputType: proto.String("." + protoPackage + "." + m.MethodName + "Response"),
		})
	}
	return service
}

type fieldTag struct {
	name     string
	number   int32
	repeated bool
}

// parseFieldTag reads the protoc-gen-go tag form "bytes,1,opt,name=ucac_id,proto3".
func parseFieldTag(raw string) (fieldTag, bool, error) {
	if raw == "" {
		return fieldTag{}, false, nil
	}
	parts := strings.Split(raw, ",")
	if len(parts) < 4 {
		return fieldTag{}, false, fmt.Errorf("malformed protobuf tag %q", raw)
	}
	number, err := strconv.ParseInt(parts[1], 10, 32)
	if err != nil || number <= 0 {
		return fieldTag{}, false, fmt.Errorf("bad field number in %q", raw)
	}
	tag := fieldTag{number: int32(number), repeated: parts[2] == "rep"}
	for _, part := range parts[3:] {
		if name, ok := strings.CutPrefix(part, "name="); ok {
			tag.name = name
		}
	}
	if tag.name == "" {
		return fieldTag{}, false, fmt.Errorf("missing name in %q", raw)
	}
	return tag, true, nil
}

func buildPlans(file protoreflect.FileDescriptor) (map[reflect.Type]*messagePlan, error) {
	built := make(map[reflect.Type]*messagePlan, len(messageTypes))
	for _, m := range messageTypes {
		t := reflect.TypeOf(m).Elem()
		desc := file.Messages().ByName(protoreflect.Name(t.Name()))
		if desc == nil {
			return nil, fmt.Errorf("no descriptor for %s", t.Name())
		}
		plan := &messagePlan{desc: desc}
		for i := 0; i < t.NumField(); i++ {
			tag, ok, err := parseFieldTag(t.Field(i).Tag.Get("protobuf"))
			if err != nil {
				return nil, err
			}
			if !ok {
				continue
			}
			plan.fields = append(plan.fields, fieldPlan{index: i, fd: desc.Fields().ByNumber(protoreflect.FieldNumber(tag.number))})
		}
		built[t] = plan
	}
	return built, nil
}

func planFor(v any) (reflect.Value, *messagePlan, error) {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() || rv.Kind() != reflect.Pointer {
		return reflect.Value{}, nil, fmt.Errorf("stakev1: %T is not a message", v)
	}
	plan, ok := plans[rv.Type().Elem()]
	if !ok {
		return reflect.Value{}, nil, fmt.Errorf("stakev1: %T is not a message", v)
	}
	return rv, plan, nil
}

// newWire returns an empty wire message for the struct type of v.
func newWire(v any) (*dynamicpb.Message, error) {
	_, plan, err := planFor(v)
	if err != nil {
		return nil, err
	}
	return dynamicpb.NewMessage(plan.desc), nil
}

// toWire copies a message struct into a protobuf message. A nil pointer
// yields an empty message.
func toWire(v any) (*dynamicpb.Message, error) {
	rv, plan, err := planFor(v)
	if err != nil {
		return nil, err
	}
	msg := dynamicpb.NewMessage(plan.desc)
	if rv.IsNil() {
		return msg, nil
	}
	writeFields(msg, rv.Elem(), plan)
	return msg, nil
}

func writeFields(msg protoreflect.Message, rv reflect.Value, plan *messagePlan) {
	for _, f := range plan.fields {
		fv := rv.Field(f.index)
		switch {
		case f.fd.IsList():
			if fv.Len() == 0 {
				continue
			}
			list := msg.Mutable(f.fd).List()
			for i := 0; i < fv.Len(); i++ {
				elem := list.NewElement()
				writeMessage(elem.Message(), fv.Index(i))
				list.Append(elem)
			}
		case f.fd.Kind() == protoreflect.MessageKind:
			if fv.IsNil() {
				continue
			}
			writeMessage(msg.Mutable(f.fd).Message(), fv)
		default:
			if value, set := scalarValue(fv); set {
				msg.Set(f.fd, value)
			}
		}
	}
}

func writeMessage(dst protoreflect.Message, ptr reflect.Value) {
	if ptr.IsNil() {
		return
	}
	if ts, ok := ptr.Interface().(*timestamppb.Timestamp); ok {
		copyScalars(dst, ts.ProtoReflect())
		return
	}
	writeFields(dst, ptr.Elem(), plans[ptr.Type().Elem()])
}

// scalarValue reports false for zero values, which proto3 leaves unset.
func scalarValue(fv reflect.Value) (protoreflect.Value, bool) {
	switch fv.Kind() {
	case reflect.String:
		return protoreflect.ValueOfString(fv.String()), fv.Len() > 0
	case reflect.Bool:
		return protoreflect.ValueOfBool(fv.Bool()), fv.Bool()
	case reflect.Int32:
		return protoreflect.ValueOfInt32(int32(fv.Int())), fv.Int() != 0
	case reflect.Int64:
		return protoreflect.ValueOfInt64(fv.Int()), fv.Int() != 0
	default:
		return protoreflect.Value{}, false
	}
}

// fromWire copies a protobuf message into the message struct v points to.
func fromWire(msg protoreflect.Message, v any) error {
	rv, plan, err := planFor(v)
	if err != nil {
		return err
	}
	if rv.IsNil() {
		return errors.New("stakev1: decode into nil message")
	}
	if got := msg.Descriptor().FullName(); got != plan.desc.FullName() {
		return fmt.Errorf("stakev1: decode %s into %s", got, plan.desc.FullName())
	}
	readFields(msg, rv.Elem(), plan)
	return nil
}

func readFields(msg protoreflect.Message, rv reflect.Value, plan *messagePlan) {
	for _, f := range plan.fields {
		fv := rv.Field(f.index)
		switch {
		case f.fd.IsList():
			list := msg.Get(f.fd).List()
			if list.Len() == 0 {
				continue
			}
			out := reflect.MakeSlice(fv.Type(), list.Len(), list.Len())
			for i := 0; i < list.Len(); i++ {
				out.Index(i).Set(readMessage(list.Get(i).Message(), fv.Type().Elem()))
			}
			fv.Set(out)
		case f.fd.Kind() == protoreflect.MessageKind:
			if msg.Has(f.fd) {
				fv.Set(readMessage(msg.Get(f.fd).Message(), fv.Type()))
			}
		default:
			value := msg.Get(f.fd)
			switch fv.Kind() {
			case reflect.String:
				fv.SetString(value.String())
			case reflect.Bool:
				fv.SetBool(value.Bool())
			case reflect.Int32, reflect.Int64:
				fv.SetInt(value.Int())
			}
		}
	}
}

func readMessage(src protoreflect.Message, ptrType reflect.Type) reflect.Value {
	if ptrType == timestampType {
		ts := &timestamppb.Timestamp{}
		copyScalars(ts.ProtoReflect(), src)
		return reflect.ValueOf(ts)
	}
	ptr := reflect.New(ptrType.Elem())
	readFields(src, ptr.Elem(), plans[ptrType.Elem()])
	return ptr
}

// copyScalars copies populated fields between two implementations of the
// same scalar-only message, such as google.protobuf.Timestamp.
func copyScalars(dst, src protoreflect.Message) {
	fields := dst.Descriptor().Fields()
	src.Range(func(fd protoreflect.FieldDescriptor, v protoreflect.Value) bool {
		if target := fields.ByNumber(fd.Number()); target != nil {
			dst.Set(target, v)
		}
		return true
	})
}

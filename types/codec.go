package types

import (
	"encoding/json"
	"fmt"

	collcodec "cosmossdk.io/collections/codec"
	"github.com/cosmos/cosmos-sdk/codec"
)

// AllRequestMsgs lists every transaction message the module accepts.
var AllRequestMsgs = []any{
	&MsgCreateVaultRequest{},
	&MsgDepositRequest{},
	&MsgWithdrawRequest{},
	&MsgRebalanceRequest{},
	&MsgWithdrawProtocolFeesRequest{},
	&MsgChangeProtocolFeeRequest{},
	&MsgWithdrawAdminFeesRequest{},
	&MsgChangeAdminFeeRequest{},
	&MsgProposeNewAdminRequest{},
	&MsgAcceptNewAdminRequest{},
	&MsgBurnVaultAdminRequest{},
	&MsgChangeVaultRebalancerRequest{},
	&MsgChangeVaultParametersRequest{},
}

// RegisterLegacyAminoCodec registers the module's messages with the legacy
// amino codec.
func RegisterLegacyAminoCodec(cdc *codec.LegacyAmino) {
	cdc.RegisterConcrete(&MsgCreateVaultRequest{}, ModuleName+"/MsgCreateVault", nil)
	cdc.RegisterConcrete(&MsgDepositRequest{}, ModuleName+"/MsgDeposit", nil)
	cdc.RegisterConcrete(&MsgWithdrawRequest{}, ModuleName+"/MsgWithdraw", nil)
	cdc.RegisterConcrete(&MsgRebalanceRequest{}, ModuleName+"/MsgRebalance", nil)
	cdc.RegisterConcrete(&MsgWithdrawProtocolFeesRequest{}, ModuleName+"/MsgWithdrawProtocolFees", nil)
	cdc.RegisterConcrete(&MsgChangeProtocolFeeRequest{}, ModuleName+"/MsgChangeProtocolFee", nil)
	cdc.RegisterConcrete(&MsgWithdrawAdminFeesRequest{}, ModuleName+"/MsgWithdrawAdminFees", nil)
	cdc.RegisterConcrete(&MsgChangeAdminFeeRequest{}, ModuleName+"/MsgChangeAdminFee", nil)
	cdc.RegisterConcrete(&MsgProposeNewAdminRequest{}, ModuleName+"/MsgProposeNewAdmin", nil)
	cdc.RegisterConcrete(&MsgAcceptNewAdminRequest{}, ModuleName+"/MsgAcceptNewAdmin", nil)
	cdc.RegisterConcrete(&MsgBurnVaultAdminRequest{}, ModuleName+"/MsgBurnVaultAdmin", nil)
	cdc.RegisterConcrete(&MsgChangeVaultRebalancerRequest{}, ModuleName+"/MsgChangeVaultRebalancer", nil)
	cdc.RegisterConcrete(&MsgChangeVaultParametersRequest{}, ModuleName+"/MsgChangeVaultParameters", nil)
}

// JSONValue returns a collections value codec that stores V as JSON. The
// vault's records are plain Go structs, so JSON keeps the store inspectable
// and avoids a generated codec.
func JSONValue[V any](name string) collcodec.ValueCodec[V] {
	return jsonValueCodec[V]{name: name}
}

type jsonValueCodec[V any] struct {
	name string
}

func (c jsonValueCodec[V]) Encode(value V) ([]byte, error) {
	return json.Marshal(value)
}

func (c jsonValueCodec[V]) Decode(b []byte) (V, error) {
	var v V
	if err := json.Unmarshal(b, &v); err != nil {
		return v, fmt.Errorf("decoding %s: %w", c.name, err)
	}
	return v, nil
}

func (c jsonValueCodec[V]) EncodeJSON(value V) ([]byte, error) {
	return json.Marshal(value)
}

func (c jsonValueCodec[V]) DecodeJSON(b []byte) (V, error) {
	return c.Decode(b)
}

func (c jsonValueCodec[V]) Stringify(value V) string {
	bz, err := json.Marshal(value)
	if err != nil {
		return fmt.Sprintf("%v", value)
	}
	return string(bz)
}

func (c jsonValueCodec[V]) ValueType() string {
	return c.name
}

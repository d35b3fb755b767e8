package catalog

import valueobjects "lendit/internal/domain/value_objects"

const (
	ClockObjectID = "0x0000000000000000000000000000000000000000000000000000000000000006"

	lenditPackage  = "0x761349a326a7e8dfc7f343d44c2b6f391812fca962577308993dbc1776d0c184"
	naviPackage    = "0xe16561ba7ddcc4fed5fbee9df24155a0e9bd13adc344fe5703e2c986b0b746e9"
	suilendPackage = "0x7cd4eb3becbb78b5830cecc73faea42db660ed882525c3bcfd663ca37a3f9700"

	USDCCoinType   = "0xdba34672e30cb065b1f93e3ab55318768fd6fef66c15942c9f7cb846e2f900e7::usdc::USDC"
	LenditCoinType = lenditPackage + "::lendit::LENDIT"
	MainPoolType   = "0xf95b06141ed4a174f239417323bde3f209b972f5930d8521ea38a52aff3a6ddf::suilend::MAIN_POOL"

	naviStorage          = "0xbb4e2f4b6205c2e2a2db47aeb4f830796ec7c005f88537ee775986639bc442fe"
	suilendLendingMarket = "0x84030d26d85eaa7035084a057f2f11f701b7e2e4eda87551becbc7c97505ece1"

	naviUSDCAssetID     uint8  = 10
	suilendReserveIndex uint64 = 7
)

// Mainnet is the deployed router and its two integrated protocols.
func Mainnet() Catalog {
	return Catalog{
		Network:           "mainnet",
		AssetSymbol:       "USDC",
		DepositCoinType:   USDCCoinType,
		ShareCoinType:     LenditCoinType,
		Decimals:          6,
		RateScaleExponent: 16,
		RateSources: []RateSource{
			{
				Name: "navi",
				Call: valueobjects.MoveCall{
					Target: naviPackage + "::navi::navi_apr",
					Arguments: []valueobjects.Argument{
						valueobjects.ObjectArgument(naviStorage),
						valueobjects.PureU8Argument(naviUSDCAssetID),
					},
				},
			},
			{
				Name: "suilend",
				Call: valueobjects.MoveCall{
					Target:        suilendPackage + "::suilend::aprCalc",
					TypeArguments: []string{MainPoolType, USDCCoinType},
					Arguments: []valueobjects.Argument{
						valueobjects.ObjectArgument(suilendLendingMarket),
					},
				},
			},
		},
		Router: Router{
			Deposit: routerCall("deposit"),
			Redeem:  routerCall("redeem"),
		},
	}
}

// routerCall is shared by deposit and redeem; the order is the router's ABI.
func routerCall(function string) valueobjects.MoveCall {
	return valueobjects.MoveCall{
		Target:        lenditPackage + "::lendit::" + function,
		TypeArguments: []string{MainPoolType, USDCCoinType},
		Arguments: []valueobjects.Argument{
			valueobjects.ObjectArgument(ClockObjectID),
			valueobjects.InputCoinArgument(),
			valueobjects.ObjectArgument("0xd5222bf17214256bc6bf9c23de215cf7bd7cb49f757d5af1d9a2b673258594fa"),
			valueobjects.ObjectArgument("0x927cc047d15b8ecf1d5f6f6c6f02367229713ce467c94147013e2c1f824960a7"),
			valueobjects.ObjectArgument("0xa3582097b4c57630046c0c49a88bfc6b202a3ec0a9db5597c31765f7563755a8"),
			valueobjects.ObjectArgument(naviStorage),
			valueobjects.PureU8Argument(naviUSDCAssetID),
			valueobjects.ObjectArgument("0x46e99ac60e042097018ebf237064d1e09dbedbc83a52746341259b85e3dbad86"),
			valueobjects.ObjectArgument("0xaaf735bf83ff564e1b219a0d644de894ef5bdc4b2250b126b2a46dd002331821"),
			valueobjects.ObjectArgument("0xf87a8acb8b81d14307894d12595541a73f19933f88e1326d5be349c7a6f7559c"),
			valueobjects.ObjectArgument("0x1568865ed9a0b5ec414220e8f79b3d04c77acc82358f6e5ae4635687392ffbef"),
			valueobjects.ObjectArgument(suilendLendingMarket),
			valueobjects.ObjectArgument("0x7d0f64888dfd9fddf82da4d0b72e976b86b7a5a59c90b0cbb9e608c3ba4f4425"),
			valueobjects.PureU64Argument(suilendReserveIndex),
			valueobjects.ObjectArgument("0x5dec622733a204ca27f5a90d8c2fad453cc6665186fd5dff13a83d0b6c9027ab"),
		},
	}
}

package i18n

var ptBRMessages = map[Code]string{
	CodeUnknown:             "Ocorreu um erro inesperado.",
	CodeUnauthorized:        "Somente o {{.Role}} pode realizar esta operação.",
	CodeAdmin1Mismatch:      "O ledger foi criado por outro admin1.",
	CodeIdentityToken:       "O token de identidade está ausente, expirado ou inválido.",
	CodeInsufficientStake:   "O saldo em stake {{.Staked}} é menor que o solicitado {{.Requested}}.",
	CodeExternalCallFailure: "A unidade de valor {{.Unit}} rejeitou a transferência.",
	CodeTokenNotSet:         "Nenhuma unidade de valor atual está configurada.",
	CodeInvalidAmount:       "O valor deve ser um número inteiro positivo.",
	CodeInvalidUcacID:       "O id do UCAC deve ter no máximo 32 bytes.",
	CodeInvalidArgument:     "O valor de {{.Field}} é inválido.",
}

package model

import "strconv"

// TransactionType is the ledger transaction kind. Values match the field numbers of
// the transaction body data oneof.
type TransactionType int32

const (
	TransactionTypeUnknown                TransactionType = 0
	TransactionTypeContractCall           TransactionType = 7
	TransactionTypeContractCreate         TransactionType = 8
	TransactionTypeContractUpdate         TransactionType = 9
	TransactionTypeCryptoAddLiveHash      TransactionType = 10
	TransactionTypeCryptoCreateAccount    TransactionType = 11
	TransactionTypeCryptoDelete           TransactionType = 12
	TransactionTypeCryptoDeleteLiveHash   TransactionType = 13
	TransactionTypeCryptoTransfer         TransactionType = 14
	TransactionTypeCryptoUpdateAccount    TransactionType = 15
	TransactionTypeFileAppend             TransactionType = 16
	TransactionTypeFileCreate             TransactionType = 17
	TransactionTypeFileDelete             TransactionType = 18
	TransactionTypeFileUpdate             TransactionType = 19
	TransactionTypeSystemDelete           TransactionType = 20
	TransactionTypeSystemUndelete         TransactionType = 21
	TransactionTypeContractDelete         TransactionType = 22
	TransactionTypeFreeze                 TransactionType = 23
	TransactionTypeConsensusCreateTopic   TransactionType = 24
	TransactionTypeConsensusUpdateTopic   TransactionType = 25
	TransactionTypeConsensusDeleteTopic   TransactionType = 26
	TransactionTypeConsensusSubmitMessage TransactionType = 27
	TransactionTypeUncheckedSubmit        TransactionType = 28
	TransactionTypeTokenCreation          TransactionType = 29
	TransactionTypeTokenFreeze            TransactionType = 31
	TransactionTypeTokenUnfreeze          TransactionType = 32
	TransactionTypeTokenGrantKyc          TransactionType = 33
	TransactionTypeTokenRevokeKyc         TransactionType = 34
	TransactionTypeTokenDeletion          TransactionType = 35
	TransactionTypeTokenUpdate            TransactionType = 36
	TransactionTypeTokenMint              TransactionType = 37
	TransactionTypeTokenBurn              TransactionType = 38
	TransactionTypeTokenWipe              TransactionType = 39
	TransactionTypeTokenAssociate         TransactionType = 40
	TransactionTypeTokenDissociate        TransactionType = 41
	TransactionTypeScheduleCreate         TransactionType = 42
	TransactionTypeScheduleDelete         TransactionType = 43
	TransactionTypeScheduleSign           TransactionType = 44
	TransactionTypeTokenFeeScheduleUpdate TransactionType = 45
	TransactionTypeTokenPause             TransactionType = 46
	TransactionTypeTokenUnpause           TransactionType = 47
	TransactionTypeCryptoApproveAllowance TransactionType = 48
	TransactionTypeCryptoDeleteAllowance  TransactionType = 49
	TransactionTypeEthereumTransaction    TransactionType = 50
	TransactionTypeNodeStakeUpdate        TransactionType = 51
	TransactionTypeUtilPrng               TransactionType = 52
	TransactionTypeTokenUpdateNfts        TransactionType = 53
	TransactionTypeNodeCreate             TransactionType = 54
	TransactionTypeNodeUpdate             TransactionType = 55
	TransactionTypeNodeDelete             TransactionType = 56
	TransactionTypeTokenReject            TransactionType = 57
	TransactionTypeTokenAirdrop           TransactionType = 58
	TransactionTypeTokenCancelAirdrop     TransactionType = 59
	TransactionTypeTokenClaimAirdrop      TransactionType = 60
)

var transactionTypeNames = map[TransactionType]string{
	TransactionTypeContractCall:           "CONTRACTCALL",
	TransactionTypeContractCreate:         "CONTRACTCREATEINSTANCE",
	TransactionTypeContractUpdate:         "CONTRACTUPDATEINSTANCE",
	TransactionTypeCryptoAddLiveHash:      "CRYPTOADDLIVEHASH",
	TransactionTypeCryptoCreateAccount:    "CRYPTOCREATEACCOUNT",
	TransactionTypeCryptoDelete:           "CRYPTODELETE",
	TransactionTypeCryptoDeleteLiveHash:   "CRYPTODELETELIVEHASH",
	TransactionTypeCryptoTransfer:         "CRYPTOTRANSFER",
	TransactionTypeCryptoUpdateAccount:    "CRYPTOUPDATEACCOUNT",
	TransactionTypeFileAppend:             "FILEAPPEND",
	TransactionTypeFileCreate:             "FILECREATE",
	TransactionTypeFileDelete:             "FILEDELETE",
	TransactionTypeFileUpdate:             "FILEUPDATE",
	TransactionTypeSystemDelete:           "SYSTEMDELETE",
	TransactionTypeSystemUndelete:         "SYSTEMUNDELETE",
	TransactionTypeContractDelete:         "CONTRACTDELETEINSTANCE",
	TransactionTypeFreeze:                 "FREEZE",
	TransactionTypeConsensusCreateTopic:   "CONSENSUSCREATETOPIC",
	TransactionTypeConsensusUpdateTopic:   "CONSENSUSUPDATETOPIC",
	TransactionTypeConsensusDeleteTopic:   "CONSENSUSDELETETOPIC",
	TransactionTypeConsensusSubmitMessage: "CONSENSUSSUBMITMESSAGE",
	TransactionTypeUncheckedSubmit:        "UNCHECKEDSUBMIT",
	TransactionTypeTokenCreation:          "TOKENCREATION",
	TransactionTypeTokenFreeze:            "TOKENFREEZE",
	TransactionTypeTokenUnfreeze:          "TOKENUNFREEZE",
	TransactionTypeTokenGrantKyc:          "TOKENGRANTKYC",
	TransactionTypeTokenRevokeKyc:         "TOKENREVOKEKYC",
	TransactionTypeTokenDeletion:          "TOKENDELETION",
	TransactionTypeTokenUpdate:            "TOKENUPDATE",
	TransactionTypeTokenMint:              "TOKENMINT",
	TransactionTypeTokenBurn:              "TOKENBURN",
	TransactionTypeTokenWipe:              "TOKENWIPE",
	TransactionTypeTokenAssociate:         "TOKENASSOCIATE",
	TransactionTypeTokenDissociate:        "TOKENDISSOCIATE",
	TransactionTypeScheduleCreate:         "SCHEDULECREATE",
	TransactionTypeScheduleDelete:         "SCHEDULEDELETE",
	TransactionTypeScheduleSign:           "SCHEDULESIGN",
	TransactionTypeTokenFeeScheduleUpdate: "TOKENFEESCHEDULEUPDATE",
	TransactionTypeTokenPause:             "TOKENPAUSE",
	TransactionTypeTokenUnpause:           "TOKENUNPAUSE",
	TransactionTypeCryptoApproveAllowance: "CRYPTOAPPROVEALLOWANCE",
	TransactionTypeCryptoDeleteAllowance:  "CRYPTODELETEALLOWANCE",
	TransactionTypeEthereumTransaction:    "ETHEREUMTRANSACTION",
	TransactionTypeNodeStakeUpdate:        "NODESTAKEUPDATE",
	TransactionTypeUtilPrng:               "UTILPRNG",
	TransactionTypeTokenUpdateNfts:        "TOKENUPDATENFTS",
	TransactionTypeNodeCreate:             "NODECREATE",
	TransactionTypeNodeUpdate:             "NODEUPDATE",
	TransactionTypeNodeDelete:             "NODEDELETE",
	TransactionTypeTokenReject:            "TOKENREJECT",
	TransactionTypeTokenAirdrop:           "TOKENAIRDROP",
	TransactionTypeTokenCancelAirdrop:     "TOKENCANCELAIRDROP",
	TransactionTypeTokenClaimAirdrop:      "TOKENCLAIMAIRDROP",
}

func (t TransactionType) String() string {
	if name, ok := transactionTypeNames[t]; ok {
		return name
	}
	return "UNKNOWN(" + strconv.Itoa(int(t)) + ")"
}

// IsKnown reports whether the type is part of the known enumeration.
func (t TransactionType) IsKnown() bool {
	_, ok := transactionTypeNames[t]
	return ok
}

// ResponseCode is the ledger status of an executed transaction.
type ResponseCode int32

const (
	ResponseCodeOK                 ResponseCode = 0
	ResponseCodeSuccess            ResponseCode = 22
	ResponseCodeFeeScheduleUpdated ResponseCode = 167
)

// IsSuccessful reports whether the transaction took effect.
func (c ResponseCode) IsSuccessful() bool {
	return c == ResponseCodeSuccess || c == ResponseCodeFeeScheduleUpdated
}

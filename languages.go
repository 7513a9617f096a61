package main

import (
	"fmt"
)

type Language struct {
	English     string
	Traditional string
	ISO639_3    string
}

// Keys follow the input method's table options, which have no TW_11.
var languages = map[string]Language{
	"00": {"Nataoran Amis", "南勢阿美語", "ami"},
	"01": {"Siwkolan Amis", "秀姑巒阿美語", "ami"},
	"02": {"Coastal Amis", "海岸阿美語", "ami"},
	"03": {"Falangaw Amis", "馬蘭阿美語", "ami"},
	"04": {"Palidaw Amis", "恆春阿美語", "ami"},
	"05": {"Squliq Atayal", "賽考利克泰雅語", "tay"},
	"06": {"C'uli' Atayal", "澤敖利泰雅語", "tay"},
	"07": {"Matu'uwal Atayal", "汶水泰雅語", "tay"},
	"08": {"Plngawan Atayal", "萬大泰雅語", "tay"},
	"09": {"Skikun Atayal", "四季泰雅語", "tay"},
	"10": {"Yilan C'uli' Atayal", "宜蘭澤敖利泰雅語", "tay"},
	"12": {"Saisiyat", "賽夏語", "xsy"},
	"13": {"Thao", "邵語", "ssf"},
	"14": {"Toda Seediq", "都達賽德克語", "trv"},
	"15": {"Tgdaya Seediq", "德固達雅賽德克語", "trv"},
	"16": {"Truku Seediq", "德鹿谷賽德克語", "trv"},
	"17": {"Takituduh Bunun", "卓群布農語", "bnn"},
	"18": {"Takibakha Bunun", "卡群布農語", "bnn"},
	"19": {"Takivatan Bunun", "丹群布農語", "bnn"},
	"20": {"Takbanuaz Bunun", "巒群布農語", "bnn"},
	"21": {"Isbukun Bunun", "郡群布農語", "bnn"},
	"22": {"Eastern Paiwan", "東排灣語", "pwn"},
	"23": {"Northern Paiwan", "北排灣語", "pwn"},
	"24": {"Central Paiwan", "中排灣語", "pwn"},
	"25": {"Southern Paiwan", "南排灣語", "pwn"},
	"26": {"Eastern Rukai", "東魯凱語", "dru"},
	"27": {"Vedai Rukai", "霧台魯凱語", "dru"},
	"28": {"Labuan Rukai", "大武魯凱語", "dru"},
	"29": {"Tona Rukai", "多納魯凱語", "dru"},
	"30": {"Maga Rukai", "茂林魯凱語", "dru"},
	"31": {"Mantauran Rukai", "萬山魯凱語", "dru"},
	"32": {"Truku", "太魯閣語", "trv"},
	"33": {"Kavalan", "噶瑪蘭語", "ckv"},
	"34": {"Tsou", "鄒語", "tsu"},
	"35": {"Kanakanavu", "卡那卡那富語", "xnb"},
	"36": {"Saaroa", "拉阿魯哇語", "sxr"},
	"37": {"Nanwang Puyuma", "南王卑南語", "pyu"},
	"38": {"Katripulr Puyuma", "知本卑南語", "pyu"},
	"39": {"Ulivelivek Puyuma", "西群卑南語", "pyu"},
	"40": {"Kasavakan Puyuma", "建和卑南語", "pyu"},
	"41": {"Yami", "雅美語", "tao"},
	"42": {"Sakizaya", "撒奇萊雅語", "szy"},
}

func languageKey(index int) string {
	return fmt.Sprintf("%02d", index)
}

func LookupLanguage(index int) (Language, bool) {
	lang, ok := languages[languageKey(index)]
	return lang, ok
}

func prettyLanguageLabel(index int) string {
	lang, ok := LookupLanguage(index)
	if !ok {
		return tableBaseName(index)
	}
	return fmt.Sprintf("%s (%s)", lang.Traditional, lang.English)
}

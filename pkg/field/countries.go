package field

// Countries is the option list backing country/region fields. Entries
// are upper case and matched exactly, never localized.
var Countries = []string{
	"AFGHANISTAN", "ALBANIA", "ALGERIA", "ANDORRA", "ANGOLA",
	"ANTIGUA AND BARBUDA", "ARGENTINA", "ARMENIA", "AUSTRALIA",
	"AUSTRIA", "AZERBAIJAN", "BAHAMAS", "BAHRAIN", "BANGLADESH",
	"BARBADOS", "BELARUS", "BELGIUM", "BELIZE", "BENIN", "BHUTAN",
	"BOLIVIA", "BOSNIA AND HERZEGOVINA", "BOTSWANA", "BRAZIL",
	"BRUNEI DARUSSALAM", "BULGARIA", "BURKINA FASO", "BURUNDI",
	"CABO VERDE", "CAMBODIA", "CAMEROON", "CANADA",
	"CENTRAL AFRICAN REPUBLIC", "CHAD", "CHILE", "CHINA", "COLOMBIA",
	"COMOROS", "CONGO", "COSTA RICA", "COTE D'IVOIRE", "CROATIA",
	"CUBA", "CYPRUS", "CZECH REPUBLIC",
	"DEMOCRATIC REPUBLIC OF THE CONGO", "DENMARK", "DJIBOUTI",
	"DOMINICA", "DOMINICAN REPUBLIC", "ECUADOR", "EGYPT",
	"EL SALVADOR", "EQUATORIAL GUINEA", "ERITREA", "ESTONIA",
	"ESWATINI", "ETHIOPIA", "FIJI", "FINLAND", "FRANCE", "GABON",
	"GAMBIA", "GEORGIA", "GERMANY", "GHANA", "GREECE", "GRENADA",
	"GUATEMALA", "GUINEA", "GUINEA-BISSAU", "GUYANA", "HAITI",
	"HONDURAS", "HONG KONG", "HUNGARY", "ICELAND", "INDIA",
	"INDONESIA", "IRAN", "IRAQ", "IRELAND", "ISRAEL", "ITALY",
	"JAMAICA", "JAPAN", "JORDAN", "KAZAKHSTAN", "KENYA", "KIRIBATI",
	"KUWAIT", "KYRGYZSTAN", "LAOS", "LATVIA", "LEBANON", "LESOTHO",
	"LIBERIA", "LIBYA", "LIECHTENSTEIN", "LITHUANIA", "LUXEMBOURG",
	"MACAO", "MADAGASCAR", "MALAWI", "MALAYSIA", "MALDIVES", "MALI",
	"MALTA", "MARSHALL ISLANDS", "MAURITANIA", "MAURITIUS", "MEXICO",
	"MICRONESIA", "MOLDOVA", "MONACO", "MONGOLIA", "MONTENEGRO",
	"MOROCCO", "MOZAMBIQUE", "MYANMAR", "NAMIBIA", "NAURU", "NEPAL",
	"NETHERLANDS", "NEW ZEALAND", "NICARAGUA", "NIGER", "NIGERIA",
	"NORTH KOREA", "NORTH MACEDONIA", "NORWAY", "OMAN", "PAKISTAN",
	"PALAU", "PALESTINE", "PANAMA", "PAPUA NEW GUINEA", "PARAGUAY",
	"PERU", "PHILIPPINES", "POLAND", "PORTUGAL", "QATAR", "ROMANIA",
	"RUSSIAN FEDERATION", "RWANDA", "SAINT KITTS AND NEVIS",
	"SAINT LUCIA", "SAINT VINCENT AND THE GRENADINES", "SAMOA",
	"SAN MARINO", "SAO TOME AND PRINCIPE", "SAUDI ARABIA", "SENEGAL",
	"SERBIA", "SEYCHELLES", "SIERRA LEONE", "SINGAPORE", "SLOVAKIA",
	"SLOVENIA", "SOLOMON ISLANDS", "SOMALIA", "SOUTH AFRICA",
	"SOUTH KOREA", "SOUTH SUDAN", "SPAIN", "SRI LANKA", "SUDAN",
	"SURINAME", "SWEDEN", "SWITZERLAND", "SYRIA", "TAIWAN",
	"TAJIKISTAN", "TANZANIA", "THAILAND", "TIMOR-LESTE", "TOGO",
	"TONGA", "TRINIDAD AND TOBAGO", "TUNISIA", "TURKEY",
	"TURKMENISTAN", "TUVALU", "UGANDA", "UKRAINE",
	"UNITED ARAB EMIRATES", "UNITED KINGDOM", "UNITED STATES",
	"URUGUAY", "UZBEKISTAN", "VANUATU", "VATICAN CITY", "VENEZUELA",
	"VIETNAM", "YEMEN", "ZAMBIA", "ZIMBABWE",
}
